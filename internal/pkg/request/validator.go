package request

import (
	"errors"
	"regexp"

	cErr "hrms/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator DTO 可實作此介面提供自訂錯誤訊息，key 格式為 "Field.tag"
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 將 validator 錯誤轉為 cErr；有自訂訊息時優先使用
func GetError(request interface{}, err error) *cErr.Error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	custom, isValidator := request.(Validator)
	for _, v := range validationErrors {
		if isValidator {
			field := reg.ReplaceAllString(v.Field(), ".*")
			if message, exist := custom.GetMessages()[field+"."+v.Tag()]; exist {
				return cErr.ValidateErr(message)
			}
		}
	}
	return nil
}
