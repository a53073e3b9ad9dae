package dashboard

// sequence выдает токены запросов для одного слота состояния. Ответ
// применяется, только если его токен всё ещё последний выданный.
// Вызывается под мьютексом владельца.
type sequence struct {
	last uint64
}

func (s *sequence) next() uint64 {
	s.last++
	return s.last
}

func (s *sequence) current() uint64 {
	return s.last
}

func (s *sequence) isLatest(token uint64) bool {
	return token == s.last
}
