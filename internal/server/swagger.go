package server

//go:generate swag init -g internal/server/server.go -o internal/server/docs

// @title Reportview API
// @version 0.1
// @description Report table page and its JSON / WebSocket state surfaces.
// @contact.name Reportview Maintainers
// @contact.url https://github.com/raysh454/reportview
// @BasePath /
