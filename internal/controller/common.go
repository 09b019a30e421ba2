package controller

import (
	"fmt"
	"gig-marketplace-api/internal/common"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const (
	headerUserId   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// identity resolved by the upstream auth collaborator; its headers are
// trusted unconditionally here
type identity struct {
	Id   string
	Role string
}

func callerIdentity(c echo.Context) (identity, bool) {
	id := c.Request().Header.Get(headerUserId)
	role := c.Request().Header.Get(headerUserRole)

	if _, err := uuid.Parse(id); err != nil {
		return identity{}, false
	}
	if role != common.RoleClient && role != common.RoleFreelancer {
		return identity{}, false
	}

	return identity{Id: id, Role: role}, true
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	s, f := "", float64(0)
	if fe.Type() == reflect.TypeOf(s) {
		return getMessageForString(fe)
	}

	if fe.Type() == reflect.TypeOf(f) {
		return getMessageForNumber(fe)
	}

	if fe.Type() == reflect.TypeOf(0) {
		return getMessageForNumber(fe)
	}

	return "Unknown error (2)"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "should be greater than " + fe.Param()
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "uuid":
		return "should be a valid uuid"
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
