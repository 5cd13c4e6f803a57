package request

import (
	"fmt"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/audit"
	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateRequestBody struct {
	MaterialID        uint            `json:"material_id" validate:"required"`
	RequestedQuantity decimal.Decimal `json:"requested_quantity" validate:"gt=0"`
	Unit              string          `json:"unit" validate:"required"`
	Reason            string          `json:"reason" validate:"required"`
	Note              string          `json:"note"`
}

type MaterialSummary struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type EmployeeSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// RequestResponse emits foreign keys plus small pre-fetched summary views
// instead of the full object graph.
type RequestResponse struct {
	ID                uint                 `json:"id"`
	RequestCode       string               `json:"request_code"`
	Material          MaterialSummary      `json:"material"`
	RequestedQuantity decimal.Decimal      `json:"requested_quantity"`
	Unit              string               `json:"unit"`
	Requester         *EmployeeSummary     `json:"requester"`
	Approver          *EmployeeSummary     `json:"approver"`
	Status            models.RequestStatus `json:"status"`
	Reason            string               `json:"reason"`
	Note              string               `json:"note"`
	ApprovedAt        *time.Time           `json:"approved_at"`
	CreatedAt         time.Time            `json:"created_at"`
}

func toResponse(r *models.MaterialRequest) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		RequestCode: r.RequestCode,
		Material: MaterialSummary{
			ID:   r.Material.ID,
			Code: r.Material.Code,
			Name: r.Material.Name,
			Unit: r.Material.Unit,
		},
		RequestedQuantity: r.RequestedQuantity,
		Unit:              r.Unit,
		Status:            r.Status,
		Reason:            r.Reason,
		Note:              r.Note,
		ApprovedAt:        r.ApprovedAt,
		CreatedAt:         r.CreatedAt,
	}
	if r.Requester.ID != 0 {
		resp.Requester = &EmployeeSummary{ID: r.Requester.ID, Username: r.Requester.Username, FullName: r.Requester.FullName}
	}
	if r.Approver != nil {
		resp.Approver = &EmployeeSummary{ID: r.Approver.ID, Username: r.Approver.Username, FullName: r.Approver.FullName}
	}
	return resp
}

func toResponses(requests []models.MaterialRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toResponse(&requests[i]))
	}
	return out
}

// GET /api/requests
func ListRequestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := List(database.DB)
		if err != nil {
			return err
		}
		return response.OK(c, "Requests retrieved", toResponses(requests))
	}
}

// GET /api/requests/pending
func PendingRequestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := Pending(database.DB)
		if err != nil {
			return err
		}
		return response.OK(c, "Pending requests retrieved", toResponses(requests))
	}
}

// GET /api/requests/:id
func GetRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid request id")
		}
		req, err := Get(database.DB, uint(id))
		if err != nil {
			return err
		}
		return response.OK(c, "Request retrieved", toResponse(req))
	}
}

// POST /api/requests
func CreateRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequestBody
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		requesterID, err := auth.CurrentEmployeeID(c)
		if err != nil {
			return err
		}

		req, err := Create(database.DB, CreateInput{
			MaterialID:        body.MaterialID,
			RequestedQuantity: body.RequestedQuantity,
			Unit:              body.Unit,
			Reason:            body.Reason,
			Note:              body.Note,
		}, requesterID)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "material_request",
			EntityID:    req.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Restock request created: %s", req.RequestCode),
			After:       req,
		})

		full, err := Get(database.DB, req.ID)
		if err != nil {
			return err
		}
		return response.Created(c, "Request created", toResponse(full))
	}
}

// PUT /api/requests/:id/approve
func ApproveRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid request id")
		}

		approverID, err := auth.CurrentEmployeeID(c)
		if err != nil {
			return err
		}

		req, err := Approve(database.DB, uint(id), approverID)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "material_request",
			EntityID:    req.ID,
			Action:      models.AuditActionApprove,
			Description: fmt.Sprintf("Restock request approved: %s", req.RequestCode),
			After:       req,
		})

		full, err := Get(database.DB, req.ID)
		if err != nil {
			return err
		}
		return response.OK(c, "Request approved", toResponse(full))
	}
}

// PUT /api/requests/:id/reject?reason=
func RejectRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid request id")
		}

		reason := c.Query("reason")
		if reason == "" {
			return apperror.Validation("reason is required")
		}

		approverID, err := auth.CurrentEmployeeID(c)
		if err != nil {
			return err
		}

		req, err := Reject(database.DB, uint(id), approverID, reason)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "material_request",
			EntityID:    req.ID,
			Action:      models.AuditActionReject,
			Description: fmt.Sprintf("Restock request rejected: %s", req.RequestCode),
			After:       req,
		})

		full, err := Get(database.DB, req.ID)
		if err != nil {
			return err
		}
		return response.OK(c, "Request rejected", toResponse(full))
	}
}
