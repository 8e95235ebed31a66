package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	OpsAddr     string
	ArtifactDir string

	// Generation
	Seed           int64
	MaxProperties  int
	POIsPerProp    int
	FavoriteProb   float64
	ReviewsPerProp int

	// Seed feed
	FeedRPS     int
	FeedWorkers int

	// Feed cache
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// Document store
	MongoURI string
	MongoDB  string

	// Graph store
	Neo4jURI  string
	Neo4jUser string
	Neo4jPass string

	NodeBatchSize int
	RelBatchSize  int
	BoostFraction float64
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		OpsAddr:     env("OPS_ADDR", ":9100"),
		ArtifactDir: env("ARTIFACT_DIR", "output_entities"),

		Seed:           int64(atoi("GEN_SEED", 42)),
		MaxProperties:  atoi("GEN_MAX_PROPERTIES", 150),
		POIsPerProp:    atoi("GEN_POIS_PER_PROPERTY", 6),
		FavoriteProb:   atof("GEN_FAVORITE_PROB", 0.3),
		ReviewsPerProp: atoi("GEN_REVIEWS_PER_PROPERTY", 50),

		FeedRPS:     atoi("FEED_RPS", 5),
		FeedWorkers: atoi("FEED_WORKERS", 4),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisDB:   atoi("REDIS_DB", 0),
		RedisPass: env("REDIS_PASSWORD", ""),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,

		MongoURI: env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  env("MONGO_DB", "large_bnb_db"),

		Neo4jURI:  env("NEO4J_URI", "neo4j://localhost:7687"),
		Neo4jUser: env("NEO4J_USER", "neo4j"),
		Neo4jPass: env("NEO4J_PASSWORD", ""),

		NodeBatchSize: atoi("GRAPH_NODE_BATCH", 1000),
		RelBatchSize:  atoi("GRAPH_REL_BATCH", 500),
		BoostFraction: atof("GRAPH_BOOST_FRACTION", 0.10),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
