package staff

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/staff/model"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Staff
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Staff, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.Auth)
			protected.Post("/", handler.CreateStaff)
			protected.Put("/{id}", handler.UpdateStaff)
			protected.Delete("/{id}", handler.DeleteStaff)
		})
	})
}

// CreateStaff handles the creation of a new staff member.
// @Summary Create a new staff member
// @Description Create a new staff member with the provided details.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Message "Staff member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff member")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff member created successfully")

	response.WithMessage(writer, http.StatusCreated, "Staff member created successfully")
}

// GetStaff retrieves all staff members based on query parameters.
// @Summary Get all staff members
// @Description Retrieve all staff members with optional filtering and pagination.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param department query string false "Filter by department"
// @Param q query string false "Search by name or position"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.StaffFilter{
		Department: r.URL.Query().Get(model.FieldDepartment),
		Search:     r.URL.Query().Get(constant.RequestParamSearch),
	}

	members, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}

// GetStaffByID retrieves a staff member by its ID.
// @Summary Get a staff member by ID
// @Description Retrieve a staff member by its unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff member details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [get]
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	member, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff member by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member retrieved successfully")

	response.WithJSON(w, http.StatusOK, member)
}

// UpdateStaff replaces a staff record by its ID.
// @Summary Update a staff member
// @Description Replace the full staff record with the provided details.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Message "Staff member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff member")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member updated successfully")

	response.WithMessage(w, http.StatusOK, "Staff member updated successfully")
}

// DeleteStaff deletes a staff member by its ID.
// @Summary Delete a staff member
// @Description Delete a staff member by its unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} response.Message "Staff member deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff member")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member deleted successfully")

	response.WithMessage(w, http.StatusOK, "Staff member deleted successfully")
}
