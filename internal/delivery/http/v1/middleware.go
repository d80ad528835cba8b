package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
)

const currentUserCtxKey = "current_user"

// HandleAuthMiddleware guards every task and sub-task route. It parses the
// bearer credential, verifies it, and resolves it to the current user
// record before any store operation runs.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Warn().Msg("authorization header required")
		abort(c, newUnauthorizedError("Not authorized, no token"))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		h.logger.Warn().Msg("invalid authorization header")
		abort(c, newUnauthorizedError("Not authorized, no token"))
		return
	}

	user, err := h.auth.VerifyToken(c, parts[1])
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("token verification failed")
		abort(c, newUnauthorizedError("Not authorized, token failed"))
		return
	}

	c.Set(currentUserCtxKey, user)
	c.Next()
}

func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserCtxKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// mustCurrentUser aborts with 401 when the middleware did not run; task
// and sub-task handlers are never registered without it.
func mustCurrentUser(c *gin.Context) (*models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		abort(c, newStatusTextError(http.StatusUnauthorized))
	}
	return user, ok
}

// objectIDParam parses a path parameter as a document id, aborting with
// 400 when the value is not a valid object id.
func objectIDParam(c *gin.Context, param, message string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		abort(c, newBadRequestError(message))
		return primitive.NilObjectID, false
	}
	return id, true
}
