// Package config loads the featenc command configuration from environment
// variables, optionally seeded from a .env file.
//
//	FEATENC_SCHEMA=schema.yaml          # required
//	FEATENC_VOCAB_SOURCE=file           # file | s3 | redis
//	FEATENC_VOCAB_DIR=vocab
//	FEATENC_S3_BUCKET=ml-vocab
//	FEATENC_S3_REGION=us-east-1
//	FEATENC_REDIS_URL=redis://localhost:6379/0
//	FEATENC_DISCARD_UNKNOWN=false
//	FEATENC_FILTER_ZERO=false
//	FEATENC_WORKERS=0                   # 0 = GOMAXPROCS
//	FEATENC_BATCH_SIZE=1024
//	FEATENC_LOG_LEVEL=info
package config
