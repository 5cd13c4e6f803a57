package request

import (
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateInput struct {
	MaterialID        uint
	RequestedQuantity decimal.Decimal
	Unit              string
	Reason            string
	Note              string
}

// Create opens a new restock request in PENDING state on behalf of the
// requester. Caller identity is an explicit parameter, never ambient state.
func Create(db *gorm.DB, in CreateInput, requesterID uint) (*models.MaterialRequest, error) {
	var material models.Material
	if err := db.First(&material, in.MaterialID).Error; err != nil {
		return nil, apperror.NotFound("material not found: %d", in.MaterialID)
	}

	req := models.MaterialRequest{
		RequestCode:       nextCode(time.Now()),
		MaterialID:        material.ID,
		RequestedQuantity: in.RequestedQuantity,
		Unit:              in.Unit,
		RequesterID:       requesterID,
		Status:            models.RequestPending,
		Reason:            in.Reason,
		Note:              in.Note,
	}
	if err := db.Create(&req).Error; err != nil {
		return nil, apperror.Internal("could not create request")
	}
	return &req, nil
}

func List(db *gorm.DB) ([]models.MaterialRequest, error) {
	var requests []models.MaterialRequest
	if err := db.Preload("Material").Preload("Requester").Preload("Approver").
		Order("id desc").
		Find(&requests).Error; err != nil {
		return nil, apperror.Internal("could not list requests")
	}
	return requests, nil
}

func Pending(db *gorm.DB) ([]models.MaterialRequest, error) {
	var requests []models.MaterialRequest
	if err := db.Preload("Material").Preload("Requester").
		Where("status = ?", models.RequestPending).
		Order("id asc").
		Find(&requests).Error; err != nil {
		return nil, apperror.Internal("could not list pending requests")
	}
	return requests, nil
}

func Get(db *gorm.DB, id uint) (*models.MaterialRequest, error) {
	var req models.MaterialRequest
	if err := db.Preload("Material").Preload("Requester").Preload("Approver").
		First(&req, id).Error; err != nil {
		return nil, apperror.NotFound("request not found: %d", id)
	}
	return &req, nil
}

// Approve moves a PENDING request to APPROVED. Any other state fails with
// InvalidState; approval happens exactly once.
func Approve(db *gorm.DB, id, approverID uint) (*models.MaterialRequest, error) {
	var req models.MaterialRequest
	if err := db.First(&req, id).Error; err != nil {
		return nil, apperror.NotFound("request not found: %d", id)
	}

	if req.Status != models.RequestPending {
		return nil, apperror.InvalidState("request already processed")
	}

	now := time.Now()
	req.Status = models.RequestApproved
	req.ApproverID = &approverID
	req.ApprovedAt = &now

	if err := db.Save(&req).Error; err != nil {
		return nil, apperror.Internal("could not approve request")
	}
	return &req, nil
}

// Reject moves a PENDING request to REJECTED and appends the rejection
// reason to the note.
func Reject(db *gorm.DB, id, approverID uint, reason string) (*models.MaterialRequest, error) {
	var req models.MaterialRequest
	if err := db.First(&req, id).Error; err != nil {
		return nil, apperror.NotFound("request not found: %d", id)
	}

	if req.Status != models.RequestPending {
		return nil, apperror.InvalidState("request already processed")
	}

	now := time.Now()
	req.Status = models.RequestRejected
	req.ApproverID = &approverID
	req.ApprovedAt = &now
	req.Note = req.Note + "\nRejection reason: " + reason

	if err := db.Save(&req).Error; err != nil {
		return nil, apperror.Internal("could not reject request")
	}
	return &req, nil
}

func nextCode(now time.Time) string {
	return "REQ-" + now.Format("20060102150405")
}
