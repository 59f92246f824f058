// Package pawtrait provides a private family photo-sharing backend with
// pluggable metadata storage and presigned-URL based uploads.
//
// Clients never send photo bytes through the server. Instead the service
// issues a time-bound presigned URL scoped to a single object key, the
// client PUTs the file straight to object storage, and then records the
// photo's metadata. All data is scoped to an opaque family identifier.
//
// # Key Components
//
//   - PhotoService: core request logic (issue upload grants, record
//     metadata, list a family's photos, resolve content URLs)
//   - PhotoRepo: metadata persistence interface (DynamoDB, Postgres, SQLite
//     implementations live under database/)
//   - URLSigner: presigned-URL minting interface (S3 implementation lives
//     in s3store/)
//
// The HTTP surface is implemented in the http/ subpackage and served either
// as a standalone server (cmd/pawtrait) or as an AWS Lambda function behind
// API Gateway (cmd/pawtrait-lambda).
package pawtrait
