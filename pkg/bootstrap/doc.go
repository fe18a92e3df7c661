// Package bootstrap creates new F´ projects.
//
// Run resolves everything a generation needs (template root, destination,
// project name, configuration) and hands it to the materializer:
//
//	res, err := bootstrap.Run(ctx, bootstrap.Options{
//		Path:   "./MyProject",
//		Verify: true,
//	})
//
// The project name defaults to the last segment of the destination path and
// the destination defaults to the project name under the working directory.
package bootstrap
