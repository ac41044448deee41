//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// PublishStatus is the WordPress status given to mirrored posts
// ENUM(publish,draft,pending,private)
type PublishStatus string
