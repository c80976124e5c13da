package gateway

import (
	"net/http"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
)

func (g *Gateway) signUp(w http.ResponseWriter, r *http.Request) {
	var req authpb.SignUpRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Auth(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.SignUp(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (g *Gateway) signIn(w http.ResponseWriter, r *http.Request) {
	var req authpb.SignInRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Auth(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.SignIn(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
