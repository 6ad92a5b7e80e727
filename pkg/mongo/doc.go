// Package mongo connects to MongoDB for the option store.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "optguard")
//	if err != nil {
//	    return err
//	}
//	store := optionstore.NewMongoStore(db.Collection("options"))
//
// New retries until the server answers a ping or the attempts run out.
package mongo
