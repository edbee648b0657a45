package dashboard

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/dashboard/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary retrieves the aggregated dashboard figures.
// @Summary Get dashboard summary
// @Description Retrieve occupancy, revenue, pending payments and entity counts for the current snapshot.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
