package repository

import (
	"context"

	"github.com/idudina/library-service/internal/model"
)

func (r *repository) CountCopies(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `select count(*) from `+bookCopiesTableName)
	return count, err
}

func (r *repository) ReservationStats(ctx context.Context, today model.Date) (model.ReservationStats, error) {
	const q = `
	select count(*) filter (where returned_at is null) as borrowed,
	       count(*) filter (where returned_at is null and return_date = $1) as due_today
	from ` + reservationsTableName

	var row struct {
		Borrowed int `db:"borrowed"`
		DueToday int `db:"due_today"`
	}
	if err := r.db.GetContext(ctx, &row, q, today); err != nil {
		return model.ReservationStats{}, err
	}
	return model.ReservationStats{
		BorrowedCount: row.Borrowed,
		DueTodayCount: row.DueToday,
	}, nil
}

func (r *repository) OverdueMembers(ctx context.Context, today model.Date, limit int) ([]model.OverdueMember, error) {
	const q = `
	select distinct u.id, u.name, u.email
	from ` + usersTableName + ` u
	join ` + reservationsTableName + ` r on r.user_id = u.id
	where u.role = 'member'
	  and r.returned_at is null
	  and r.return_date < $1
	order by u.id
	limit $2`

	var members []model.OverdueMember
	if err := r.db.SelectContext(ctx, &members, q, today, limit); err != nil {
		return nil, err
	}
	return members, nil
}

const memberReservationColumns = `
	select r.id, r.return_date, r.returned_at, c.serial_number, b.title, b.author
	from ` + reservationsTableName + ` r
	join ` + bookCopiesTableName + ` c on c.id = r.book_copy_id
	join ` + booksTableName + ` b on b.id = c.book_id
	where r.user_id = $1`

func (r *repository) MemberActiveNotOverdue(ctx context.Context, userID int, today model.Date, limit int) ([]model.MemberReservation, error) {
	q := memberReservationColumns + `
	  and r.returned_at is null
	  and r.return_date >= $2
	order by r.return_date
	limit $3`

	var items []model.MemberReservation
	if err := r.db.SelectContext(ctx, &items, q, userID, today, limit); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) MemberActiveOverdue(ctx context.Context, userID int, today model.Date, limit int) ([]model.MemberReservation, error) {
	q := memberReservationColumns + `
	  and r.returned_at is null
	  and r.return_date < $2
	order by r.return_date
	limit $3`

	var items []model.MemberReservation
	if err := r.db.SelectContext(ctx, &items, q, userID, today, limit); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) MemberRecentHistory(ctx context.Context, userID, limit int) ([]model.MemberReservation, error) {
	q := memberReservationColumns + `
	  and r.returned_at is not null
	order by r.returned_at desc, r.id desc
	limit $2`

	var items []model.MemberReservation
	if err := r.db.SelectContext(ctx, &items, q, userID, limit); err != nil {
		return nil, err
	}
	return items, nil
}
