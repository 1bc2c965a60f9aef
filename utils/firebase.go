package utils

import (
	"context"
	"log"

	"sprout/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	// AuthClient verifies Firebase ID tokens issued to the mobile client.
	AuthClient *auth.Client
	// FirestoreClient is the shared handle to the remote document store.
	FirestoreClient *firestore.Client
)

// FirebaseInit initializes the Firebase App, Auth and Firestore clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	var fbConfig *firebase.Config
	if config.AppConfig.FirestoreProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.AppConfig.FirestoreProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	AuthClient = authClient
	FirestoreClient = fsClient
}

// GetFirestoreClient returns the shared Firestore client.
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}
