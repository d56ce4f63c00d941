package handlers

import (
	"net/http"
	"time"

	"rinseo/middleware"
	"rinseo/models"
	"rinseo/utils"

	"github.com/gin-gonic/gin"
)

const tokenLifetime = 72 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler authenticates the client session and replays a deferred
// add-to-cart intent, when one was captured before login.
func (h *Storefront) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	notifier := &responseNotifier{}
	sess := h.sessionService(c, notifier)

	current, err := sess.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if utils.IsValidationError(err) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed, please try again", "")
		return
	}

	token, err := utils.GenerateToken(middleware.ClientID(c), current.User.Email, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed, please try again", "")
		return
	}

	replayed := h.replayPendingItem(c, sess, notifier)

	c.JSON(http.StatusOK, gin.H{
		"user":          safeUser(current.User),
		"token":         token,
		"replayedItem":  replayed,
		"notifications": notifier.notifications,
	})
}

// RegisterHandler creates an account and authenticates the session.
func (h *Storefront) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	notifier := &responseNotifier{}
	sess := h.sessionService(c, notifier)

	current, err := sess.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if utils.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed, please try again", "")
		return
	}

	token, err := utils.GenerateToken(middleware.ClientID(c), current.User.Email, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed, please try again", "")
		return
	}

	replayed := h.replayPendingItem(c, sess, notifier)

	c.JSON(http.StatusCreated, gin.H{
		"user":          safeUser(current.User),
		"token":         token,
		"replayedItem":  replayed,
		"notifications": notifier.notifications,
	})
}

// LogoutHandler clears the session. The response carries the safe path
// the client should navigate to.
func (h *Storefront) LogoutHandler(c *gin.Context) {
	notifier := &responseNotifier{}
	redirector := &responseRedirector{}

	sess := h.sessionService(c, notifier)
	sess.Redirector = redirector
	if err := sess.Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"redirect":      redirector.path,
		"notifications": notifier.notifications,
	})
}

// ProfileHandler returns the authenticated user.
func (h *Storefront) ProfileHandler(c *gin.Context) {
	sess := h.sessionService(c, &responseNotifier{})
	user := sess.CurrentUser()
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Login required", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": safeUser(user)})
}

// replayPendingItem performs the one automatic AddItem replay of a
// deferred intent after a successful authentication.
func (h *Storefront) replayPendingItem(c *gin.Context, auth interface{ IsAuthenticated() bool }, notifier *responseNotifier) *models.CartItemDraft {
	relay := h.pendingRelay(c)
	item, ok := relay.ConsumeIfAuthenticated(c.Request.Context(), auth)
	if !ok {
		return nil
	}
	cartSvc := h.cartService(c, notifier)
	cartSvc.AddItem(c.Request.Context(), item.ProductID, item.Kind, item.UnitPrice, item.DisplayName, item.ImageRef, item.SelectedSize)
	return item
}

func safeUser(u *models.User) models.User {
	return models.User{ID: u.ID, Name: u.Name, Email: u.Email}
}
