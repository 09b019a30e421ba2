package controller

import (
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}
	outer.POST("/gigs", h.PostGig)
	outer.GET("/gigs", h.GetOpenGigs)
	outer.GET("/gigs/my-gigs", h.GetMyGigs)
	outer.GET("/gigs/:gigId", h.GetGig)

	return h
}

type postGigInput struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description string  `json:"description" validate:"required,max=2000"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// /gigs
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}
	if caller.Role != common.RoleClient {
		return c.JSON(http.StatusForbidden, errorResponse{"Only clients can post gigs"})
	}

	var input postGigInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateGigInput{
		Title: input.Title, Description: input.Description,
		Budget: input.Budget, OwnerId: caller.Id,
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusCreated, gig)
	}

	switch err {
	case service.ErrInvalidBudget, service.ErrMissingFields:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Please add all fields"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}
	}

	return err
}

// /gigs?search=
func (h *gigRoutesHandler) GetOpenGigs(c echo.Context) error {
	keyword := c.QueryParam("search")

	gigs, err := h.gigService.GetOpenGigs(c.Request().Context(), keyword)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, gigs)
}

// /gigs/my-gigs
func (h *gigRoutesHandler) GetMyGigs(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	gigs, err := h.gigService.GetUserGigs(c.Request().Context(), caller.Id)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, gigs)
}

// /gigs/:gigId
func (h *gigRoutesHandler) GetGig(c echo.Context) error {
	gig, err := h.gigService.GetGigById(c.Request().Context(), c.Param("gigId"))
	if err == nil {
		return c.JSON(http.StatusOK, gig)
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Gig not found"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}
	}

	return err
}
