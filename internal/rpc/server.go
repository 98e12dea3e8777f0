package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/discussion-board/internal/board"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const NamespaceBoard = "board"

func New(logger *slog.Logger, manager *board.Manager) *zenrpc.Server {
	rpcService := NewBoardService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NamespaceBoard, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "discussion-board", nil))

	return rpcServer
}
