package chunkproto

import "encoding/json"

// DecodeBase extracts just the type/version envelope from b so a caller can
// route to the right concrete message type before unmarshaling the rest.
func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}
