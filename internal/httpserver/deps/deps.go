package deps

import (
	"time"

	"github.com/folio-dev/folio/internal/chatbot"
	"github.com/folio-dev/folio/internal/logger"
	filestore "github.com/folio-dev/folio/internal/store/file"
	redisstore "github.com/folio-dev/folio/internal/store/redis"
)

type Deps struct {
	Logger     logger.Logger
	Store      *filestore.Store      // JSON document store
	Analytics  *redisstore.Analytics // Topic counters (disabled when Redis is not configured)
	Classifier *chatbot.Classifier   // Ordered trigger rules for free-text queries
	StartTime  time.Time
	Version    string
	Commit     string
	BuildDate  string
	GoVersion  string
	TimeNow    func() time.Time // for testing, defaults to time.Now
}
