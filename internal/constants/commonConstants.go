package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixShips CachePrefix = "SHIPS_"
)

// CacheKeyAllShips holds the serialised full record set.
const CacheKeyAllShips = string(CachePrefixShips) + "ALL"

// Listing defaults applied when the client omits them.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

const (
	StoreDriverGORM = "gorm"
	StoreDriverSQLX = "sqlx"

	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)
