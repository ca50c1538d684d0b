package validate

import (
	"fmt"
	"reflect"
	"strings"

	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationErrorResponse 輸出格式化的 validator error（欄位 json 名/規則）
func ValidationErrorResponse(obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(errs))
		for _, fe := range errs {
			parts = append(parts, fmt.Sprintf("field %q failed the '%s' validation (rules: %v)",
				jsonFieldName(obj, fe.StructField()), fe.Tag(), bindingRules(obj, fe.StructField())))
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprintf("invalid request body: %s", err.Error())
}

func structField(obj interface{}, name string) (reflect.StructField, bool) {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(name)
}

func jsonFieldName(obj interface{}, name string) string {
	if f, ok := structField(obj, name); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return name
}

func bindingRules(obj interface{}, name string) []string {
	if f, ok := structField(obj, name); ok {
		if tag := f.Tag.Get("binding"); tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

// ParseObjectID 路徑參數不是合法 ObjectID 時回傳 InvalidID（與 NotFound 區分）
func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.InvalidID("invalid " + key)
	}
	return id, nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		if custom := request.GetError(req, err); custom != nil {
			return err, custom
		}
		return err, cErr.ValidateErr(ValidationErrorResponse(req, err))
	}
	return nil, nil
}
