// Package handshake implements the RFC 6455 opening handshake checks that
// upgrade an HTTP/1.1 connection to a WebSocket.
//
// The functions work on already parsed headers given as name/value pairs,
// so they can be used with any HTTP stack. Adapters for net/http are
// provided as well.
//
// Server Example:
//
//	headers := handshake.FromHTTPHeader(r.Header)
//	if !handshake.CheckSupportedRequest(r.Method, headers) {
//	    http.Error(w, "not a websocket handshake", http.StatusBadRequest)
//	    return
//	}
//	key := r.Header.Get(handshake.HeaderSecWebSocketKey)
//	if err := handshake.WriteResponseHeaders(w.Header(), key, ""); err != nil {
//	    http.Error(w, err.Error(), http.StatusBadRequest)
//	    return
//	}
//	w.WriteHeader(http.StatusSwitchingProtocols)
//
// Client Example:
//
//	key, err := handshake.CreateRequestKey()
//	if err != nil {
//	    return err
//	}
//	req.Header.Set(handshake.HeaderSecWebSocketKey, key)
//	// ... send request, read response ...
//	if !handshake.IsResponseKeyValid(key, resp.Header.Get(handshake.HeaderSecWebSocketAccept)) {
//	    return handshake.ErrBadHandshake
//	}
package handshake
