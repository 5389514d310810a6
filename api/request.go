package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// createTransactionRequest is the body of POST /transactions. Pointers make
// "required" mean present rather than non-zero, so a zero amount or an empty
// title are still accepted.
type createTransactionRequest struct {
	Title  *string  `json:"title" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
	Type   string   `json:"type" binding:"required,oneof=credit debit"`
}

type getTransactionParams struct {
	ID string `uri:"id" binding:"required,uuid_rfc4122"`
}

type validationIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// abortWithValidationError answers 400 with the fields that failed to parse.
func abortWithValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]validationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, validationIssue{
				Field: strings.ToLower(fe.Field()),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "issues": issues})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"issues": []validationIssue{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}},
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
}
