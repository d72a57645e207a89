// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the single source of truth for round requests.

# Layout

The collection lives in a db.Backend under two keys:

	golf-round-requests → JSON array of models.RoundRequest
	golf-initialized    → "true" once the seed data has been written

# Lifecycle

The first read or write seeds the backend with the fixed collection from
package seed. Create rewrites the data key with the previously created
requests plus the new one, so seed rows drop out of storage after the first
create. Clear deletes both keys; the next call reseeds.

	st := store.New(backend, notify.NewWebhook(url, client))
	defer st.Close()

	req, err := st.Create(ctx, input)
	all, err := st.GetAll(ctx)

# Notifications

Create hands the new request to the notify.Notifier in a goroutine after the
write succeeds. Close waits for those goroutines.

# No Backend

A nil backend models an environment without durable storage. GetAll and
GetSeedOnly return the seed collection, GetPersistedOnly returns nothing,
Clear does nothing, and Create returns ErrStorageUnavailable.
*/
package store
