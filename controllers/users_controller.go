package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/services"
)

// UsersController handles user management requests
type UsersController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewUsersController creates a new users controller
func NewUsersController(services *services.Services, logger *slog.Logger) *UsersController {
	return &UsersController{
		services: services,
		logger:   logger,
	}
}

type userFormData struct {
	models.PageData
	Action      string
	Cancel      string
	Form        *models.UserForm
	DateOfBirth string
}

func newUserFormData(title, action, cancel string, form *models.UserForm, dateOfBirth string, errors []string) userFormData {
	if dateOfBirth == "" && form.DateOfBirth != nil {
		dateOfBirth = models.FormatDate(*form.DateOfBirth)
	}
	return userFormData{
		PageData:    models.PageData{Title: title, CurrentPage: "users", Errors: errors},
		Action:      action,
		Cancel:      cancel,
		Form:        form,
		DateOfBirth: dateOfBirth,
	}
}

// Index handles GET /users
func (c *UsersController) Index(w http.ResponseWriter, r *http.Request) {
	activeParam := r.URL.Query().Get("active")

	var active *bool
	if value, err := strconv.ParseBool(activeParam); err == nil {
		active = &value
		activeParam = strconv.FormatBool(value)
	} else {
		activeParam = ""
	}

	users, err := c.services.User.ListUsers(r.Context(), active)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to load users", err)
		return
	}

	templateData := struct {
		models.PageData
		Users  []models.UserSummary
		Active string
	}{
		PageData: models.PageData{Title: "Users", CurrentPage: "users", FlashMessage: popFlash(r)},
		Users:    users,
		Active:   activeParam,
	}

	renderTemplate(w, "users.html", templateData)
}

// New handles GET /users/new
func (c *UsersController) New(w http.ResponseWriter, r *http.Request) {
	form := &models.UserForm{IsActive: true} // Default to active for new users
	renderTemplate(w, "user_form.html", newUserFormData("Add User", "/users", "/users", form, "", nil))
}

// Create handles POST /users
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	form, rawDate, problems := parseUserForm(r)
	if problems != nil {
		renderTemplateWithStatus(w, http.StatusBadRequest, "user_form.html",
			newUserFormData("Add User", "/users", "/users", form, rawDate, problems))
		return
	}

	result, err := c.services.User.CreateUser(r.Context(), form)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to create user", err)
		return
	}
	if !result.Success {
		renderTemplateWithStatus(w, http.StatusBadRequest, "user_form.html",
			newUserFormData("Add User", "/users", "/users", form, rawDate, result.Errors))
		return
	}

	setFlash(r, "success", "User "+form.Forename+" "+form.Surname+" created")
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// Show handles GET /users/{id}
func (c *UsersController) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := c.loadUser(w, r)
	if !ok {
		return
	}

	templateData := struct {
		models.PageData
		User *models.UserDetail
	}{
		PageData: models.PageData{Title: user.Forename + " " + user.Surname, CurrentPage: "users", FlashMessage: popFlash(r)},
		User:     user,
	}

	renderTemplate(w, "user_detail.html", templateData)
}

// Edit handles GET /users/{id}/edit
func (c *UsersController) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := c.loadUser(w, r)
	if !ok {
		return
	}

	form := &models.UserForm{
		ID:          user.ID,
		Forename:    user.Forename,
		Surname:     user.Surname,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth,
		IsActive:    user.IsActive,
	}
	userURL := "/users/" + strconv.Itoa(user.ID)

	renderTemplate(w, "user_form.html", newUserFormData("Edit User", userURL, userURL, form, "", nil))
}

// Update handles POST /users/{id}
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.userID(w, r)
	if !ok {
		return
	}
	userURL := "/users/" + strconv.Itoa(id)

	form, rawDate, problems := parseUserForm(r)
	form.ID = id
	if problems != nil {
		renderTemplateWithStatus(w, http.StatusBadRequest, "user_form.html",
			newUserFormData("Edit User", userURL, userURL, form, rawDate, problems))
		return
	}

	result, err := c.services.User.UpdateUser(r.Context(), form)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to update user", err)
		return
	}
	if isUserNotFound(result) {
		renderError(w, r, c.logger, http.StatusNotFound, services.UserNotFound, nil)
		return
	}
	if !result.Success {
		renderTemplateWithStatus(w, http.StatusBadRequest, "user_form.html",
			newUserFormData("Edit User", userURL, userURL, form, rawDate, result.Errors))
		return
	}

	setFlash(r, "success", "User updated")
	http.Redirect(w, r, userURL, http.StatusSeeOther)
}

// ConfirmDelete handles GET /users/{id}/delete
func (c *UsersController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := c.loadUser(w, r)
	if !ok {
		return
	}

	templateData := struct {
		models.PageData
		User *models.UserDetail
	}{
		PageData: models.PageData{Title: "Delete User", CurrentPage: "users"},
		User:     user,
	}

	renderTemplate(w, "user_delete.html", templateData)
}

// Delete handles POST /users/{id}/delete
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.userID(w, r)
	if !ok {
		return
	}

	result, err := c.services.User.DeleteUser(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}
	if !result.Success {
		setFlash(r, "error", strings.Join(result.Errors, "; "))
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	setFlash(r, "success", "User deleted")
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// userID parses the {id} URL parameter, answering 404 when it is not a number
func (c *UsersController) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, c.logger, http.StatusNotFound, services.UserNotFound, nil)
		return 0, false
	}
	return id, true
}

// loadUser fetches the user named by the {id} URL parameter, answering the request when it cannot
func (c *UsersController) loadUser(w http.ResponseWriter, r *http.Request) (*models.UserDetail, bool) {
	id, ok := c.userID(w, r)
	if !ok {
		return nil, false
	}

	user, found, err := c.services.User.GetUser(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to load user", err)
		return nil, false
	}
	if !found {
		renderError(w, r, c.logger, http.StatusNotFound, services.UserNotFound, nil)
		return nil, false
	}
	return user, true
}

// parseUserForm reads the submitted user fields. The raw date is returned so an
// unparseable value can be shown back to the user.
func parseUserForm(r *http.Request) (*models.UserForm, string, []string) {
	form := &models.UserForm{}
	if err := r.ParseForm(); err != nil {
		return form, "", []string{"Failed to parse form"}
	}

	// Get the last value for 'is_active' (checkbox will override hidden field if checked)
	activeValues := r.Form["is_active"]
	form.IsActive = len(activeValues) > 0 && activeValues[len(activeValues)-1] == "on"

	form.Forename = strings.TrimSpace(r.FormValue("forename"))
	form.Surname = strings.TrimSpace(r.FormValue("surname"))
	form.Email = strings.TrimSpace(r.FormValue("email"))

	rawDate := strings.TrimSpace(r.FormValue("date_of_birth"))
	dateOfBirth, err := models.ParseOptionalDate(rawDate)
	if err != nil {
		return form, rawDate, []string{"Date of birth must be a valid date"}
	}
	form.DateOfBirth = dateOfBirth

	return form, rawDate, nil
}

func isUserNotFound(result *models.OperationResult) bool {
	return !result.Success && len(result.Errors) == 1 && result.Errors[0] == services.UserNotFound
}
