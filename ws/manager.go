package ws

import (
	"context"
	"sync"

	"realestate_backend/internal/logger"
	"realestate_backend/internal/services/dto"
)

// Manager tracks connected realtors and pushes inquiry notifications to them.
// A realtor may hold several connections at once.
type Manager struct {
	clients    map[uint]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[uint]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled, then closes every
// remaining client.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			conns, ok := m.clients[client.UserID]
			if !ok {
				conns = make(map[*Client]struct{})
				m.clients[client.UserID] = conns
			}
			conns[client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("Websocket client registered", "user_id", client.UserID, "total", m.ClientCount())

		case client := <-m.unregister:
			m.remove(client)

		case <-ctx.Done():
			m.mu.Lock()
			for userID, conns := range m.clients {
				for client := range conns {
					close(client.Send)
				}
				delete(m.clients, userID)
			}
			m.mu.Unlock()
			return
		}
	}
}

// join and leave give up once Run has returned.
func (m *Manager) join(client *Client) bool {
	select {
	case m.register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) leave(client *Client) {
	select {
	case m.unregister <- client:
	case <-m.done:
	}
}

func (m *Manager) remove(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	conns, ok := m.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}
	close(client.Send)
	delete(conns, client)
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
	}
	logger.Debug("Websocket client unregistered", "user_id", client.UserID)
}

// NotifyInquiry pushes n to every connection of the listing's realtor. An
// offline realtor is not an error.
func (m *Manager) NotifyInquiry(ctx context.Context, n *dto.InquiryNotification) error {
	delivered := m.SendToUser(n.Realtor.ID, n)
	logger.CtxDebug(ctx, "Inquiry pushed over websocket", "realtor_id", n.Realtor.ID, "connections", delivered)
	return nil
}

// SendToUser queues message for each of the user's connections and returns
// how many accepted it. A connection with a full buffer is dropped.
func (m *Manager) SendToUser(userID uint, message any) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	delivered := 0
	for client := range m.clients[userID] {
		select {
		case client.Send <- message:
			delivered++
		default:
			go m.leave(client)
			logger.Warn("Websocket client dropped due to full send channel", "user_id", userID)
		}
	}
	return delivered
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, conns := range m.clients {
		total += len(conns)
	}
	return total
}

func (m *Manager) IsUserConnected(userID uint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}
