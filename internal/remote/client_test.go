package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"catering_backend/internal/datastore"
	"catering_backend/internal/metrics"
	"catering_backend/internal/models"
	"catering_backend/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := metrics.New()
	c, err := New(srv.URL, "test-key", 2*time.Second, WithMetrics(m), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return c, m
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "ftp://example.com", "http://"} {
		_, err := New(raw, "", 0)
		assert.Error(t, err, raw)
	}
}

func TestClient_Headers(t *testing.T) {
	var gotKey, gotRequestID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apikey")
		gotRequestID = r.Header.Get(utils.RequestIDHeader)
		writeJSON(w, http.StatusOK, []models.User{})
	})

	ctx := utils.WithRequestID(context.Background(), "req-123")
	_, err := c.GetUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "req-123", gotRequestID)

	_, err = c.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, gotRequestID, 36, "a uuid is generated when the context carries none")
}

func TestClient_ListAndFilters(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/ingredients":
			writeJSON(w, http.StatusOK, []models.Ingredient{{ID: 1, Name: "Salt"}, {ID: 2, Name: "Pepper"}})
		case r.URL.Path == "/api/menu-items" && r.URL.Query().Get("menu_id") == "4":
			writeJSON(w, http.StatusOK, []models.MenuItem{{ID: 9, MenuID: 4, Name: "Tart"}})
		case r.URL.Path == "/api/scheduling" && r.URL.Query().Get("action") == "bids":
			assert.Equal(t, "3", r.URL.Query().Get("shift_id"))
			w.Write([]byte("null"))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	ingredients, err := c.GetIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, ingredients, 2)

	items, err := c.GetMenuItemsByMenu(ctx, 4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].MenuID)

	bids, err := c.GetShiftBids(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, bids)
	assert.Empty(t, bids)

	series, err := testutil.GatherAndCount(m.Registry(), "catering_remote_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, series)
}

func TestClient_GetOne(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") + r.URL.Query().Get("email") {
		case "5":
			writeJSON(w, http.StatusOK, models.Event{ID: 5, Name: "Gala"})
		case "a@example.com":
			writeJSON(w, http.StatusOK, []models.User{{ID: 2, Email: "a@example.com"}})
		case "nobody@example.com":
			writeJSON(w, http.StatusOK, []models.User{})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		}
	})
	ctx := context.Background()

	e, err := c.GetEvent(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Gala", e.Name)

	u, err := c.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)

	_, err = c.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, datastore.ErrNotFound)

	_, err = c.GetEvent(ctx, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrNotFound)
	assert.NotErrorIs(t, err, datastore.ErrRemoteUnavailable)
	var re *datastore.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "event not found", re.Message)
	assert.Equal(t, http.MethodGet, re.Method)
	assert.Equal(t, "/api/events", re.Endpoint)
	assert.Equal(t, datastore.StoreRemote, datastore.StoreOf(err))
}

func TestClient_ErrorMessages(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/menus":
			writeJSON(w, http.StatusBadGateway, map[string]string{"reason": "upstream down"})
		case "/api/equipment":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
		}
	})
	ctx := context.Background()

	_, err := c.GetMenus(ctx)
	assert.ErrorIs(t, err, datastore.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "upstream down")
	assert.Contains(t, err.Error(), "GET /api/menus")

	_, err = c.GetEquipment(ctx)
	assert.ErrorIs(t, err, datastore.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusServiceUnavailable))

	err = c.DeleteTask(ctx, 1)
	assert.ErrorIs(t, err, datastore.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "DELETE /api/tasks")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(base, "", time.Second, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	_, err = c.GetIngredients(context.Background())
	assert.ErrorIs(t, err, datastore.ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, datastore.ErrNotFound)
}

func TestClient_CreateSynthesizesFromAcknowledgement(t *testing.T) {
	var received models.Ingredient
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, http.StatusCreated, map[string]int64{"id": 77})
	})

	got, err := c.AddIngredient(context.Background(), models.Ingredient{Name: "Saffron", Unit: "g", PricePerUnit: 12})
	require.NoError(t, err)
	assert.Equal(t, "Saffron", received.Name)
	assert.Equal(t, int64(77), got.ID)
	assert.Equal(t, "Saffron", got.Name)
	assert.Equal(t, "g", got.Unit)
	assert.Equal(t, 12.0, got.PricePerUnit)
}

func TestClient_CreateLeavesPayloadUntouched(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]interface{}{"id": 5, "name": "Gala", "client_id": 9})
	})

	clientID := int64(3)
	payload := models.Event{Name: "Gala", ClientID: &clientID}
	got, err := c.AddEvent(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	require.NotNil(t, got.ClientID)
	assert.Equal(t, int64(9), *got.ClientID)
	assert.Equal(t, int64(3), clientID)
	assert.NotSame(t, payload.ClientID, got.ClientID)
}

func TestClient_Update(t *testing.T) {
	var puts int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			atomic.AddInt32(&puts, 1)
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 42.0, body["id"])
			assert.Equal(t, 3.5, body["price_per_unit"])
			_, hasName := body["name"]
			assert.False(t, hasName, "nil patch fields are not sent")
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		case http.MethodGet:
			writeJSON(w, http.StatusOK, models.Ingredient{ID: 42, Name: "Flour", PricePerUnit: 3.5})
		}
	})

	price := 3.5
	got, err := c.UpdateIngredient(context.Background(), 42, models.IngredientPatch{PricePerUnit: &price})
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.Name, "an answer without a record is read back")
	assert.Equal(t, int32(1), atomic.LoadInt32(&puts))
}

func TestClient_SchedulingActions(t *testing.T) {
	var lastQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		switch r.Method {
		case http.MethodPut:
			writeJSON(w, http.StatusOK, models.ShiftBid{ID: 4, Status: models.BidStatusAccepted})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusOK, []models.StaffAvailability{})
		}
	})
	ctx := context.Background()

	_, err := c.GetStaffAvailability(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "action=availability&user_id=11", lastQuery)

	bid, err := c.UpdateShiftBidStatus(ctx, 4, models.BidStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, bid.Status)
	assert.Equal(t, "action=bids", lastQuery)

	_, err = c.UpdateShiftBidStatus(ctx, 4, "bogus")
	assert.ErrorIs(t, err, datastore.ErrValidation)

	require.NoError(t, c.DeleteBlackoutDate(ctx, 8))
	assert.Equal(t, "action=blackouts&id=8", lastQuery)
}

func TestClient_UploadMessageAttachment(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/messages/attachments", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "12", r.FormValue("message_id"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "quote.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4", string(content))
		writeJSON(w, http.StatusOK, map[string]string{"url": "https://files.example.com/quote.pdf"})
	})

	att, err := c.UploadMessageAttachment(context.Background(), 12, "docs/quote.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), att.MessageID)
	assert.Equal(t, "quote.pdf", att.FileName)
	assert.Equal(t, int64(8), att.Size)
	assert.Equal(t, "https://files.example.com/quote.pdf", att.URL)
}

func TestClient_MaintenanceUnsupported(t *testing.T) {
	c, err := New("http://example.invalid", "", time.Second)
	require.NoError(t, err)
	ctx := context.Background()
	assert.ErrorIs(t, c.SeedSampleData(ctx), datastore.ErrUnsupportedOperation)
	assert.ErrorIs(t, c.ClearSampleData(ctx), datastore.ErrUnsupportedOperation)
	assert.ErrorIs(t, c.ClearAllData(ctx), datastore.ErrUnsupportedOperation)
}
