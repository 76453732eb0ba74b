// Package awscred loads, modifies, and saves AWS credentials stored in the
// standard AWS shared credentials file format (~/.aws/credentials). Profiles
// and their keys can be edited through a chainable setter API without having
// to hand-edit the file.
//
//	creds, err := awscred.Load()
//	if err != nil {
//		// handle error
//	}
//	creds.WithProfile("default").
//		SetAccessKeyID("ACCESS_KEY").
//		SetSecretAccessKey("SECRET_KEY")
//	err = creds.Write()
//
// The package only edits local text. It never talks to AWS and does not
// validate that keys or secrets are well-formed AWS identifiers.
//
// Comments in the source file are discarded on parse and are not written
// back, so a load-and-write cycle strips them. This is a known limitation of
// the format handling, not a bug.
package awscred
