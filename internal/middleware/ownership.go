package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// Context keys for records loaded by ownership guards.
const (
	ChildKey        = "child"
	PrescriptionKey = "prescription"
	ImageKey        = "image"
	RecordKey       = "record"
)

// Lookup loads the record a guard protects. It returns an *apperr.Error
// of kind NotFound when the record does not exist.
type Lookup func(c *gin.Context) (models.Owner, error)

// CheckOwnership fails with Forbidden unless user owns record.
func CheckOwnership(user *models.User, record models.Owner) error {
	if user == nil || record == nil || user.ID == "" || record.OwnerID() != user.ID {
		return apperr.NewForbidden(utils.MsgForbidden)
	}
	return nil
}

// RequireOwner loads a record, rejects callers that do not own it and stores
// the record in the gin context under key. Missing records are reported
// before ownership is checked. It should be used *after* CurrentUser.
func RequireOwner(key string, lookup Lookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			utils.Abort(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
			return
		}

		record, err := lookup(c)
		if err != nil {
			utils.Abort(c, err)
			return
		}

		if err := CheckOwnership(user, record); err != nil {
			utils.Abort(c, err)
			return
		}

		c.Set(key, record)
		c.Next()
	}
}

// notFoundOr turns repository.ErrNotFound into a NotFound error with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NewNotFound(msg)
	}
	return apperr.NewInternal(err, utils.MsgInternal)
}

// ChildOwner guards routes addressing a child by the path parameter "id"
// or, failing that, the "childId" query parameter.
func ChildOwner(children repository.ChildRepository) gin.HandlerFunc {
	return RequireOwner(ChildKey, func(c *gin.Context) (models.Owner, error) {
		id := c.Param("id")
		if id == "" {
			id = c.Query("childId")
		}
		if id == "" {
			return nil, apperr.NewBadRequest(utils.MsgChildIDRequired)
		}
		child, err := children.FindByID(c.Request.Context(), id)
		if err != nil {
			return nil, notFoundOr(err, utils.MsgChildNotFound)
		}
		return child, nil
	})
}

// PrescriptionOwner guards routes addressing a prescription by path "id".
func PrescriptionOwner(prescriptions repository.PrescriptionRepository) gin.HandlerFunc {
	return RequireOwner(PrescriptionKey, func(c *gin.Context) (models.Owner, error) {
		id := c.Param("id")
		if id == "" {
			return nil, apperr.NewBadRequest(utils.MsgPrescriptionIDReq)
		}
		p, err := prescriptions.FindByID(c.Request.Context(), id)
		if err != nil {
			return nil, notFoundOr(err, utils.MsgPrescriptionGone)
		}
		return p, nil
	})
}

// ImageOwner guards routes addressing an uploaded image by path "id".
func ImageOwner(images repository.ImageRepository) gin.HandlerFunc {
	return RequireOwner(ImageKey, func(c *gin.Context) (models.Owner, error) {
		img, err := images.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			return nil, notFoundOr(err, utils.MsgImageNotFound)
		}
		return img, nil
	})
}

// RecordOwner guards routes addressing a daily record by path "id".
func RecordOwner(records repository.RecordRepository) gin.HandlerFunc {
	return RequireOwner(RecordKey, func(c *gin.Context) (models.Owner, error) {
		r, err := records.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			return nil, notFoundOr(err, utils.MsgRecordNotFound)
		}
		return r, nil
	})
}

// GetChild returns the child loaded by ChildOwner.
func GetChild(c *gin.Context) (*models.Child, bool) {
	v, ok := c.Get(ChildKey)
	if !ok {
		return nil, false
	}
	child, ok := v.(*models.Child)
	return child, ok
}

// GetPrescription returns the prescription loaded by PrescriptionOwner.
func GetPrescription(c *gin.Context) (*models.Prescription, bool) {
	v, ok := c.Get(PrescriptionKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Prescription)
	return p, ok
}

// GetImage returns the image loaded by ImageOwner.
func GetImage(c *gin.Context) (*models.Image, bool) {
	v, ok := c.Get(ImageKey)
	if !ok {
		return nil, false
	}
	img, ok := v.(*models.Image)
	return img, ok
}

// GetRecord returns the record loaded by RecordOwner.
func GetRecord(c *gin.Context) (*models.Record, bool) {
	v, ok := c.Get(RecordKey)
	if !ok {
		return nil, false
	}
	r, ok := v.(*models.Record)
	return r, ok
}
