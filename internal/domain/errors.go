package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound              = errors.New("recurso não encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("não autorizado")
	ErrForbidden             = errors.New("acesso negado")
	ErrEmailAlreadyExists    = errors.New("o e-mail já está cadastrado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrInvalidReference      = errors.New("unidade ou variação de item inexistente")
	ErrInsufficientStock     = errors.New("estoque insuficiente")
	ErrInsufficientBalance   = errors.New("saldo do colaborador insuficiente")
	ErrStockNotFound         = errors.New("registro de estoque não encontrado")
	ErrBalanceNotFound       = errors.New("saldo do colaborador não encontrado")
	ErrInvalidTransition     = errors.New("transição de status não permitida")
	ErrInvalidState          = errors.New("movimentação em estado inválido para a operação")
	ErrEmptyRequest          = errors.New("nenhum item informado")
	ErrDamageExceedsReturned = errors.New("quantidade avariada excede o total devolvido")
)
