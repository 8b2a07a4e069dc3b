package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/ShohjahonSohibov/Aberno/constant"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		_ = v.RegisterValidation("lead_status", func(fl gpvalidator.FieldLevel) bool {
			return constant.LeadStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("post_status", func(fl gpvalidator.FieldLevel) bool {
			return constant.PostStatus(fl.Field().String()).Valid()
		})
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}
