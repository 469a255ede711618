package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	authdelivery "konexio-backend/internal/auth/delivery"
	contactdto "konexio-backend/internal/contact/dto"
	contactrepo "konexio-backend/internal/contact/repository"
	"konexio-backend/internal/contact/usecase"
	"konexio-backend/pkg/validate"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// GetContacts returns the authenticated user's contacts, optionally
// narrowed by query-string filters
// GET /contacts/?field=value&...
func (h *ContactHandler) GetContacts(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	filters, err := parseFilters(c.Request.URL.RawQuery)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		return
	}

	contacts, err := h.contactUsecase.List(userID, filters)
	if err != nil {
		var unknown *usecase.UnknownFilterError
		switch {
		case errors.As(err, &unknown):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("The filter %q doesn't exist.", unknown.Key)})
		case errors.Is(err, usecase.ErrNoMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": "There is no contacts matching your criteria."})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contacts, "count": len(contacts)})
}

// CreateContact runs the contact-creation protocol
// POST /contacts/
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var req contactdto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	contact, err := h.contactUsecase.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Contact successfully created !", "contact": contact})
}

// UpdateContact applies a partial-field merge onto an existing contact
// PUT /contacts/
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req contactdto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	contact, err := h.contactUsecase.Update(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact ID not found in your contacts' list. Please choose a valid one."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem happened."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": fmt.Sprintf("contact ID %s successfully updated !", contact.ID),
		"contact": contact,
	})
}

// DeleteContact removes a contact and the owner's reference to it
// DELETE /contacts/
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var req contactdto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	deleted, remaining, err := h.contactUsecase.Delete(userID, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact ID not found in your contacts' list. Please choose a valid one."})
		case errors.Is(err, contactrepo.ErrUserDocUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A problem happened. Failed to update the user's document."})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "A problem happened."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": fmt.Sprintf("contact ID %s successfully deleted !", deleted.Email),
		"data":    remaining,
	})
}

// parseFilters keeps the client's filter order, which url.Values would lose.
func parseFilters(rawQuery string) ([]usecase.Filter, error) {
	if rawQuery == "" {
		return nil, nil
	}

	var filters []usecase.Filter
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		filters = append(filters, usecase.Filter{Key: k, Value: v})
	}
	return filters, nil
}
