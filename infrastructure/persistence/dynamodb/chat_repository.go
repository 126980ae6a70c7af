package dynamodb

import (
	"context"

	"fitit-backend/domain/entities"

	"go.uber.org/zap"
)

// sessionIndex is the GSI keyed on the chat session id.
const sessionIndex = "sessionId-index"

// ChatRepository stores chat messages. Messages carry a TTL attribute so
// DynamoDB expires them without a cleanup job.
type ChatRepository struct {
	*Repository[entities.ChatMessage]
}

// NewChatRepository creates a chat message repository.
func NewChatRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		Repository: NewRepository[entities.ChatMessage](client, Config{
			TableName:  tableName,
			EntityName: "chat message",
		}, logger),
	}
}

// FindBySession returns all messages in a session.
func (r *ChatRepository) FindBySession(ctx context.Context, sessionID string) ([]entities.ChatMessage, error) {
	return r.queryByIndex(ctx, sessionIndex, "sessionId", sessionID)
}
