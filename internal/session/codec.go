package session

import (
	"encoding/json"
	"fmt"
)

func encodeIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode learned sentences: %w", err)
	}
	return data, nil
}
