// Package app owns the console's composition root: configuration,
// logging, the template catalog, the deployment runner, and the lifecycle
// of the API server that ties them together.
package app
