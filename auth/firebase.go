package auth

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase wires the hosted auth provider. Credentials come in as a
// JSON blob from the environment (no key file on disk).
func InitFirebase(ctx context.Context) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

// verifyIDToken checks the Firebase ID token (including revocation) and
// the audience, returning the verified token.
func verifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.Audience != projectID {
		return nil, errAudienceMismatch
	}
	return token, nil
}
