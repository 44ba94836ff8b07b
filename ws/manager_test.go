package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"realestate_backend/internal/services/dto"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) *Manager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	go m.Run(ctx)
	t.Cleanup(cancel)
	return m
}

func inquiry(realtorID uint) *dto.InquiryNotification {
	return &dto.InquiryNotification{
		Type:        dto.InquiryNotificationType,
		MessageID:   11,
		HomeID:      3,
		HomeAddress: "12 King St",
		HomeCity:    "Toronto",
		Message:     "Is it still available?",
		Realtor:     dto.ContactResponse{ID: realtorID, Name: "Rita"},
		Buyer:       &dto.ContactResponse{ID: 9, Name: "Bob", Email: "bob@example.com"},
	}
}

func TestManager_SendToUserTargetsOnlyThatUser(t *testing.T) {
	m := startManager(t)

	mine := &Client{UserID: 1, Send: make(chan any, 1), Manager: m}
	other := &Client{UserID: 2, Send: make(chan any, 1), Manager: m}
	require.True(t, m.join(mine))
	require.True(t, m.join(other))
	require.Eventually(t, func() bool { return m.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, m.NotifyInquiry(context.Background(), inquiry(1)))

	select {
	case msg := <-mine.Send:
		n, ok := msg.(*dto.InquiryNotification)
		require.True(t, ok)
		assert.Equal(t, uint(3), n.HomeID)
	case <-time.After(time.Second):
		t.Fatal("realtor did not receive the notification")
	}
	assert.Len(t, other.Send, 0)
}

func TestManager_OfflineRealtorIsNotAnError(t *testing.T) {
	m := startManager(t)

	assert.NoError(t, m.NotifyInquiry(context.Background(), inquiry(42)))
	assert.Equal(t, 0, m.SendToUser(42, "ping"))
}

func TestManager_DropsClientWithFullBuffer(t *testing.T) {
	m := startManager(t)

	slow := &Client{UserID: 5, Send: make(chan any, 1), Manager: m}
	require.True(t, m.join(slow))
	require.Eventually(t, func() bool { return m.IsUserConnected(5) }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, m.SendToUser(5, "first"))
	assert.Equal(t, 0, m.SendToUser(5, "second"))

	require.Eventually(t, func() bool { return !m.IsUserConnected(5) }, time.Second, 10*time.Millisecond)
}

func TestManager_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	stopped := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(stopped)
	}()

	c := &Client{UserID: 1, Send: make(chan any, 1), Manager: m}
	require.True(t, m.join(c))
	cancel()
	<-stopped

	_, open := <-c.Send
	assert.False(t, open)
	assert.False(t, m.join(&Client{UserID: 2, Send: make(chan any, 1), Manager: m}))
}

func TestServeWS_DeliversInquiryOverConnection(t *testing.T) {
	m := startManager(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = ServeWS(m, w, r, 7)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.IsUserConnected(7) }, time.Second, 10*time.Millisecond)
	require.NoError(t, m.NotifyInquiry(context.Background(), inquiry(7)))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got map[string]any
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, dto.InquiryNotificationType, got["type"])
	assert.Equal(t, "Is it still available?", got["message"])
	assert.NotContains(t, got, "realtor")

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return !m.IsUserConnected(7) }, 2*time.Second, 10*time.Millisecond)
}
