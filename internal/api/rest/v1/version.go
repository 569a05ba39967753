package v1

// BasePath is the prefix of every editor API route
const BasePath = "/api"
