package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeReclaimObject = "video:reclaim_object"

type ReclaimObjectPayload struct {
	ObjectKey string `json:"object_key"`
}

// NewReclaimObjectTask creates an Asynq task checking an object for a
// referencing video record and removing it when orphaned.
func NewReclaimObjectTask(objectKey string) (*asynq.Task, error) {
	p := ReclaimObjectPayload{ObjectKey: objectKey}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal reclaim-object payload: %w", err)
	}
	return asynq.NewTask(TypeReclaimObject, data), nil
}

// ParseReclaimObjectPayload parses the task payload to ReclaimObjectPayload.
func ParseReclaimObjectPayload(t *asynq.Task) (ReclaimObjectPayload, error) {
	var p ReclaimObjectPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ReclaimObjectPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
