package misc

// Nothing is a placeholder for rpc methods that take no request or return
// no reply.
type Nothing struct{}
