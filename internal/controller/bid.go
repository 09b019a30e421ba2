package controller

import (
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.POST("/bids", h.PostBid)
	outer.GET("/bids/my-bids", h.GetMyBids)
	outer.GET("/bids/:gigId", h.GetGigBids)
	outer.PATCH("/bids/:bidId/hire", h.Hire)

	return h
}

type postBidInput struct {
	GigId   string  `json:"gigId" validate:"required,uuid"`
	Message string  `json:"message" validate:"required,max=1000"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

// /bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}
	if caller.Role != common.RoleFreelancer {
		return c.JSON(http.StatusForbidden, errorResponse{"Only freelancers can place bids"})
	}

	var input postBidInput
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

	model := &entity.CreateBidInput{
		GigId: input.GigId, FreelancerId: caller.Id,
		Message: input.Message, Price: input.Price,
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusCreated, bid)
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Gig not found"}); e != nil {
			return e
		}
	case service.ErrGigNotOpenForBidding:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Gig is not open for bidding"}); e != nil {
			return e
		}
	case service.ErrOwnGigBid:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You cannot bid on your own gig"}); e != nil {
			return e
		}
	case service.ErrDuplicateBid:
		if e := c.JSON(http.StatusConflict, errorResponse{"You have already placed a bid"}); e != nil {
			return e
		}
	case service.ErrInvalidPrice, service.ErrEmptyMessage:
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

// /bids/my-bids
func (h *bidRoutesHandler) GetMyBids(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	bids, err := h.bidService.GetUserBids(c.Request().Context(), caller.Id)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, bids)
}

// /bids/:gigId
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	bids, err := h.bidService.GetBidsForGig(c.Request().Context(), c.Param("gigId"), caller.Id)
	if err == nil {
		return c.JSON(http.StatusOK, bids)
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Gig not found"}); e != nil {
			return e
		}
	case service.ErrNotGigOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Not authorized"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}
	}

	return err
}

// /bids/:bidId/hire
func (h *bidRoutesHandler) Hire(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}
	if caller.Role != common.RoleClient {
		return c.JSON(http.StatusForbidden, errorResponse{"Only clients can hire"})
	}

	result, err := h.bidService.Hire(c.Request().Context(), c.Param("bidId"), caller.Id)
	if err == nil {
		return c.JSON(http.StatusOK, result)
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Bid not found"}); e != nil {
			return e
		}
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Gig not found"}); e != nil {
			return e
		}
	case service.ErrHireNotAllowed:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Not authorized to hire for this gig"}); e != nil {
			return e
		}
	case service.ErrGigAlreadyAssigned:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Gig is already assigned"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Server Error"}); e != nil {
			return e
		}
	}

	return err
}
