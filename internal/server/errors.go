package server

import (
	"errors"

	"github.com/kataras/iris/v12"

	"github.com/lukpoex/next-commerce/internal/service"
)

// writeError maps service errors onto the HTTP taxonomy: validation → 400,
// not found → 404, anything else → 500 with the message.
func writeError(ctx iris.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": err.Error()})
	default:
		ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
	}
}
