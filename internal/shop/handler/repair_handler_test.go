package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/bitfantasy/fixera/internal/shop/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRepairTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewRepairService(repos.Repair, repos.Customer, repos.User)
	h := NewRepairHandler(svc)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api/v1")
	repairs := api.Group("/repairs")
	{
		repairs.GET("", h.List)
		repairs.POST("", h.Create)
		repairs.GET("/:id", h.Get)
		repairs.PUT("/:id", h.Update)
		repairs.POST("/:id/status", h.ChangeStatus)
		repairs.GET("/:id/next-statuses", h.NextStatuses)
	}

	testutil.SeedTechnician(t, db, "00000000-0000-4000-8000-000000000001", "Nimal", "Silva")

	return r, db
}

func repairPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":   "Kasun Perera",
		"customer_phone":  "0712345678",
		"customer_email":  "Not Available",
		"device_type":     "Laptop",
		"device_model":    "ThinkPad T14",
		"serial_no":       "SN-1001",
		"issue":           "Does not power on",
		"estimated_cost":  "2,000.00",
		"advance_payment": "500",
		"technician_id":   "00000000-0000-4000-8000-000000000001",
		"deadline":        time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	}
}

func TestCreateRepairOrder(t *testing.T) {
	r, _ := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != "Pending" {
		t.Errorf("new order should start Pending, got %v", data["status"])
	}
	if data["customer_phone"] != "0712345678" {
		t.Errorf("unexpected customer phone: %v", data["customer_phone"])
	}
	if data["technician_name"] != "Nimal Silva" {
		t.Errorf("unexpected technician name: %v", data["technician_name"])
	}
	// due = estimated + extra - advance
	if due, ok := data["due_amount"].(float64); !ok || due != 1500 {
		t.Errorf("unexpected due amount: %v", data["due_amount"])
	}
}

func TestCreateRepairOrderValidation(t *testing.T) {
	r, db := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	payload := repairPayload()
	payload["customer_phone"] = "12345"
	payload["estimated_cost"] = "1,500.00"
	payload["advance_payment"] = "2,000.00"

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", payload, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	fields := resp["data"].(map[string]interface{})["fields"].(map[string]interface{})
	if _, ok := fields["customer_phone"]; !ok {
		t.Errorf("expected customer_phone error, got %v", fields)
	}
	if _, ok := fields["advance_payment"]; !ok {
		t.Errorf("expected advance_payment error, got %v", fields)
	}

	// Rejected submissions must not create anything.
	var count int64
	db.Table("repair_orders").Count(&count)
	if count != 0 {
		t.Errorf("no order should be persisted on validation failure, found %d", count)
	}
	db.Table("customers").Count(&count)
	if count != 0 {
		t.Errorf("no customer should be created on validation failure, found %d", count)
	}
}

func TestCreateRepairReusesCustomerByPhone(t *testing.T) {
	r, db := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	existing := testutil.SeedCustomer(t, db, "00000000-0000-4000-8000-000000000002", "Kasun Perera", "0712345678")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["customer_id"] != existing.ID {
		t.Errorf("order should link to the existing customer, got %v", data["customer_id"])
	}

	var count int64
	db.Table("customers").Count(&count)
	if count != 1 {
		t.Errorf("no duplicate customer should be created, found %d", count)
	}
}

func TestUpdateOrderWithElapsedDeadline(t *testing.T) {
	r, db := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// Age the order so its deadline is now in the past.
	received := time.Now().AddDate(0, 0, -30)
	deadline := received.AddDate(0, 0, 7)
	if err := db.Table("repair_orders").Where("id = ?", id).
		Updates(map[string]interface{}{"date_received": received, "deadline": deadline}).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}

	// Editing other fields keeps the elapsed deadline and must still work.
	payload := repairPayload()
	payload["issue"] = "Does not power on, battery swollen"
	payload["deadline"] = deadline.Format("2006-01-02")

	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/repairs/"+id, payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("edit with elapsed deadline rejected: %d %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["issue"] != "Does not power on, battery swollen" {
		t.Errorf("issue not updated: %v", data["issue"])
	}

	// A brand new order still cannot be given a past deadline.
	fresh := repairPayload()
	fresh["deadline"] = deadline.Format("2006-01-02")
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", fresh, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("create with past deadline should 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChangeStatusForwardOnly(t *testing.T) {
	r, _ := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// Skipping straight to Picked Up is a legal forward move.
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs/"+id+"/status",
		map[string]string{"status": "Picked Up"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("forward transition rejected: %d %s", w.Code, w.Body.String())
	}

	// Any move out of the terminal status is rejected.
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs/"+id+"/status",
		map[string]string{"status": "Completed"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("backward transition should 400, got %d: %s", w.Code, w.Body.String())
	}

	// And the stored status is unchanged.
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/repairs/"+id, nil, token)
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["status"] != "Picked Up" {
		t.Errorf("status should remain Picked Up, got %v", data["status"])
	}
}

func TestChangeStatusUnknownValue(t *testing.T) {
	r, _ := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs/"+id+"/status",
		map[string]string{"status": "In Progress"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status should 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNextStatuses(t *testing.T) {
	r, _ := setupRepairTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/repairs", repairPayload(), token)
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/repairs/"+id+"/next-statuses", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	items := testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	want := []string{"Completed", "Cannot Repair", "Picked Up"}
	if len(items) != len(want) {
		t.Fatalf("expected %v, got %v", want, items)
	}
	for i, s := range want {
		if items[i] != s {
			t.Errorf("next status %d = %v, want %q", i, items[i], s)
		}
	}
}

func TestRepairRequiresAuth(t *testing.T) {
	r, _ := setupRepairTest(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/repairs", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
