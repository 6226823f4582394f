package validation

import (
	"fmt"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/bestcobb/orderapi/internal/server/http/dto"
)

// New returns a configured validator with struct-level order rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(placeOrderStructValidation, dto.PlaceOrderRequest{})
	return v
}

// placeOrderStructValidation enforces rules the tag syntax cannot express:
// the decimal total must be strictly positive.
func placeOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(dto.PlaceOrderRequest)
	if !req.Total.IsPositive() {
		sl.ReportError(req.Total, "total", "Total", "positive_total", fmt.Sprintf("total %s must be positive", req.Total))
	}
}

// BindAndValidate binds the JSON body into out and runs validation. The
// returned error is nil only when out is fully valid; the caller owns the
// HTTP response.
func BindAndValidate(c *gin.Context, out any, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := v.Struct(out); err != nil {
		return fmt.Errorf("validate request: %w", err)
	}
	return nil
}
