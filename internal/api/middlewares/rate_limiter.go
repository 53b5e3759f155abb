package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

type KeyFunc func(r *http.Request) string

// PerIPKey buckets by client IP.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may carry a list: client, proxy1, proxy2...
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// RedisTokenBucket rate-limits with a refilling bucket kept in Redis, so
// limits hold across process restarts. Redis being down fails open.
type RedisTokenBucket struct {
	rdb      *redis.Client
	keyFn    KeyFunc
	ratePerS float64
	burst    int
	script   *redis.Script
	log      *slog.Logger
}

func NewRedisTokenBucket(rdb *redis.Client, log *slog.Logger, ratePerSecond float64, burst int, keyFn KeyFunc) *RedisTokenBucket {
	lua := `
-- KEYS[1] = bucket key (hash with fields: tokens, ts)
-- ARGV[1] = ratePerS (float)
-- ARGV[2] = capacity (int)
-- Returns: {allowed (1/0), remaining_tokens (float), retry_after_ms (int)}
local key   = KEYS[1]
local rate  = tonumber(ARGV[1])
local cap   = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = (tonumber(t[1]) * 1000) + math.floor(tonumber(t[2]) / 1000)

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts     = tonumber(data[2])

if tokens == nil then
  tokens = cap
  ts = now_ms
end

local delta_ms = now_ms - ts
if delta_ms > 0 then
  local refill = (delta_ms / 1000.0) * rate
  tokens = math.min(cap, tokens + refill)
end

local allowed = 0
local retry_after_ms = 0

if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
else
  allowed = 0
  retry_after_ms = math.ceil((1.0 - tokens) * 1000.0 / rate)
end

redis.call('HMSET', key, 'tokens', tokens, 'ts', now_ms)

local ttl_ms = math.ceil((cap / rate) * 1000.0)
redis.call('PEXPIRE', key, ttl_ms)

return {allowed, tokens, retry_after_ms}
`
	return &RedisTokenBucket{
		rdb:      rdb,
		keyFn:    keyFn,
		ratePerS: ratePerSecond,
		burst:    burst,
		script:   redis.NewScript(lua),
		log:      log,
	}
}

func (tb *RedisTokenBucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := tb.keyFn(r)

		res, err := tb.script.Run(r.Context(), tb.rdb, []string{key},
			strconv.FormatFloat(tb.ratePerS, 'f', -1, 64),
			strconv.Itoa(tb.burst),
		).Slice()
		if err != nil {
			tb.log.Warn("token bucket redis error, allowing request", "err", err)
			next.ServeHTTP(w, r)
			return
		}

		allowed := res[0].(int64) == 1
		retryAfterMs := toInt64(res[2])

		w.Header().Set("X-RateLimit-Policy", "token-bucket")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(tb.burst))

		if !allowed {
			sec := (retryAfterMs + 999) / 1000
			if sec < 1 {
				sec = 1
			}
			w.Header().Set("Retry-After", strconv.FormatInt(sec, 10))
			tb.log.Info("rate limited", "key", key, "retry_after_s", sec)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}
