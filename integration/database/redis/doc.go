// Package redis connects to Redis and exposes it as a storage.Backend, so the
// application's local key-value persistence can be shared between processes.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	kv := storage.New(redis.NewBackend(client, redis.WithKeyPrefix("minikit:")), "bhapp")
//	kv.Set("token", "abc") // SET minikit:bhapp-token "\"abc\""
//
// Connect validates the URL (redis:// or rediss://), then pings with
// exponential backoff until the server answers, the retry budget is spent or
// ConnectTimeout elapses. Healthcheck returns a probe suitable for readiness
// endpoints.
//
// Errors are stable sentinels usable with errors.Is:
//
//   - ErrEmptyConnectionURL: no URL configured
//   - ErrFailedToParseRedisConnString: malformed URL
//   - ErrRedisNotReady: no successful ping within the retry budget
//   - ErrHealthcheckFailed: the probe's ping failed
package redis
