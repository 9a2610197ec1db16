// Package s3 stores core/storage values as objects in Amazon S3 or an
// S3-compatible service (MinIO, DigitalOcean Spaces, Wasabi).
//
// Each key becomes one object under the configured prefix holding the
// JSON-encoded value:
//
//	var cfg s3.Config
//	config.MustLoad(&cfg)
//
//	backend, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	kv := storage.New(backend, "bhapp")
//	kv.Set("userInfo", user) // PUT s3://<bucket>/<prefix>bhapp-userInfo
//
// Static credentials are used when both AccessKeyID and SecretKey are set;
// otherwise the default AWS credential chain applies (env vars, shared
// config, IAM roles).
//
// MinIO:
//
//	cfg := s3.Config{
//		Bucket:         "minikit",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// Tests and advanced setups can inject a client with WithClient.
package s3
