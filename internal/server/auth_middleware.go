package server

import (
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/lukpoex/next-commerce/internal/auth"
	"github.com/lukpoex/next-commerce/internal/config"
)

// bearerToken extracts the token from an Authorization header, with or
// without the Bearer prefix.
func bearerToken(ctx iris.Context) string {
	raw := ctx.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
}

// requireAuth validates the bearer token, consulting the redis token cache
// before verifying the signature. Claims are stashed on the request.
func requireAuth(cfg *config.JWTConfig, cache *auth.TokenCache) iris.Handler {
	return func(ctx iris.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "missing token"})
			return
		}

		reqCtx := ctx.Request().Context()
		claims, hit, err := cache.Get(reqCtx, token)
		if err != nil || !hit {
			claims, err = auth.ParseToken(cfg, token)
			if err != nil {
				ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "invalid token"})
				return
			}
			_ = cache.Set(reqCtx, token, claims)
		}

		ctx.Values().Set("user_id", claims.UserID)
		ctx.Values().Set("email", claims.Email)
		ctx.Values().Set("role", claims.Role)
		ctx.Next()
	}
}

// requireRole stops requests whose token does not carry the wanted role.
func requireRole(role string) iris.Handler {
	return func(ctx iris.Context) {
		if ctx.Values().GetString("role") != role {
			ctx.StopWithJSON(403, iris.Map{"code": 403, "msg": "forbidden"})
			return
		}
		ctx.Next()
	}
}

func currentUserID(ctx iris.Context) int64 {
	id, _ := ctx.Values().GetInt64("user_id")
	return id
}
