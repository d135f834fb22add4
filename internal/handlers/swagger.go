package handlers

// @title Space Finder API
// @version 1.0
// @description Local server for the space finder Lambda functions

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name spaces
// @tag.description Space management operations

// @tag.name hello
// @tag.description Hello function

// @tag.name health
// @tag.description Service health
