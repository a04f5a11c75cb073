package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/redis/go-redis/v9"
)

const payloadField = "payload"

// streamMaxLen caps published streams (approximate trimming).
const streamMaxLen = 10000

var errMissingPayload = errors.New("missing payload field")

// DecodeRequest extracts the solve request carried in a stream entry.
// A message without a request id takes the entry id.
func DecodeRequest(msg redis.XMessage) (models.SolveRequest, error) {
	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		return models.SolveRequest{}, errMissingPayload
	}

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return models.SolveRequest{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	return req, nil
}

// Publish appends v as a JSON payload to stream and returns the entry id.
func Publish(ctx context.Context, client *redis.Client, stream string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{payloadField: string(data)},
	}).Result()
}
