package request

import (
	"testing"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, username string, role models.EmployeeRole) models.Employee {
	t.Helper()
	e := models.Employee{
		Username:     username,
		PasswordHash: "x",
		FullName:     "Test " + username,
		Email:        username + "@warehouse.local",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func seedMaterial(t *testing.T, db *gorm.DB, code string) models.Material {
	t.Helper()
	m := models.Material{
		Code:        code,
		Name:        "Material " + code,
		Quantity:    decimal.NewFromInt(20),
		Unit:        "kg",
		MinQuantity: decimal.NewFromInt(5),
		Status:      models.MaterialAvailable,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestCreateRequest(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	m := seedMaterial(t, db, "MAT-200")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "running low before the weekend",
		Note:              "prefer friday delivery",
	}, requester.ID)
	require.NoError(t, err)

	assert.Regexp(t, `^REQ-\d{14}$`, req.RequestCode)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, requester.ID, req.RequesterID)
	assert.Nil(t, req.ApproverID)
	assert.Nil(t, req.ApprovedAt)
}

func TestCreateRequestUnknownMaterial(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)

	_, err := Create(db, CreateInput{
		MaterialID:        999,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestApproveRequest(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-201")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.NoError(t, err)

	approved, err := Approve(db, req.ID, approver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)
	require.NotNil(t, approved.ApproverID)
	assert.Equal(t, approver.ID, *approved.ApproverID)
	require.NotNil(t, approved.ApprovedAt)
	assert.WithinDuration(t, time.Now(), *approved.ApprovedAt, time.Minute)
}

func TestApproveTwiceFails(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-202")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.NoError(t, err)

	_, err = Approve(db, req.ID, approver.ID)
	require.NoError(t, err)

	_, err = Approve(db, req.ID, approver.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
	assert.Contains(t, err.Error(), "already processed")
}

func TestRejectAppendsReasonToNote(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-203")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
		Note:              "original note",
	}, requester.ID)
	require.NoError(t, err)

	rejected, err := Reject(db, req.ID, approver.ID, "budget freeze")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, rejected.Status)
	assert.Contains(t, rejected.Note, "original note")
	assert.Contains(t, rejected.Note, "Rejection reason: budget freeze")
}

func TestRejectTwiceFails(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-204")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.NoError(t, err)

	_, err = Reject(db, req.ID, approver.ID, "first")
	require.NoError(t, err)

	_, err = Reject(db, req.ID, approver.ID, "second")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestRejectApprovedRequestFails(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-205")

	req, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.NoError(t, err)

	_, err = Approve(db, req.ID, approver.ID)
	require.NoError(t, err)

	_, err = Reject(db, req.ID, approver.ID, "too late")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestPendingListsOnlyPending(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db, "kitchen1", models.RoleKitchenStaff)
	approver := seedEmployee(t, db, "wh1", models.RoleWarehouseStaff)
	m := seedMaterial(t, db, "MAT-206")

	first, err := Create(db, CreateInput{
		MaterialID:        m.ID,
		RequestedQuantity: decimal.NewFromInt(10),
		Unit:              "kg",
		Reason:            "restock",
	}, requester.ID)
	require.NoError(t, err)

	_, err = Approve(db, first.ID, approver.ID)
	require.NoError(t, err)

	pending, err := Pending(db)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := List(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
