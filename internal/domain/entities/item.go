package entities

// Item representa uma categoria de material reciclável aceita por um ponto de coleta.
// Itens são dados de referência: criados apenas pelo seed e nunca alterados pela API.
type Item struct {
	ID    uint
	Title string
	Image string // nome do arquivo do ícone
}
