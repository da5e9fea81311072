package service

import (
	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/store"
)

// ClientServices aggregates the terminal client's services. Chat reads its
// credential from Session.
type ClientServices struct {
	Session ClientSessionService
	Chat    ClientChatService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := NewClientSessionService(localStore.SessionRepository, serverAdapter, logger.WithComponent("session"))

	return &ClientServices{
		Session: session,
		Chat:    NewClientChatService(serverAdapter, session, logger.WithComponent("chat")),
	}
}
