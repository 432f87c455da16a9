package constants

import (
	"os"
	"time"
)

func GetServeAddr() string {
	port := os.Getenv("PORT")
	if port != "" {
		return ":" + port
	}
	return ":8080"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetCardTableName() string {
	table := os.Getenv("CARD_TABLE")
	if table != "" {
		return table
	}
	return "keyboy-cards"
}

// How long a live note set must hold still before it is analyzed. Long
// enough to swallow the roll of a fast hand landing on a chord.
const DefaultClusterWait = 75 * time.Millisecond
