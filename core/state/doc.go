// Package state holds the small pieces of process-wide state the UI reads:
// the signed-in user's info, the share QR payload and the sharing user's id.
//
// The store is passive. Callers replace fields after the relevant backend call
// succeeds, and UI code reads them back:
//
//	users := state.New[UserInfo]()
//
//	info, err := request.PostAs[UserInfo](ctx, client, request.Options{URL: "bh/r/user/login", Data: creds})
//	if err == nil {
//		users.Update(info)
//	}
//
//	users.QR(payload)
//	img, _ := users.ShareQRImage(256) // data:image/png;base64,...
//
// Every mutation replaces exactly one field wholesale; nothing is merged or
// validated. User info lives in memory only unless WithPersistence is given,
// in which case it is restored at construction and saved on every Update.
package state
