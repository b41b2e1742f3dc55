package redis

// Key layout for chatbot query analytics.
const (
	// KeyPrefixTopic is the prefix for per-topic counter keys
	KeyPrefixTopic = "folio:topic:"
	// KeyAllTopics is the key for the set of all counted topics
	KeyAllTopics = "folio:topics:all"
)

// TopicKey returns the Redis key for a topic counter.
func TopicKey(topic string) string {
	return KeyPrefixTopic + topic
}

// AllTopicsKey returns the key for the set of counted topics.
func AllTopicsKey() string {
	return KeyAllTopics
}
