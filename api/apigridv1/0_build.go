package apigridv1

import (
	"github.com/fulldump/box"
)

func BuildV1Grid(v1 *box.R) *box.R {

	v1.Resource("/roles").
		WithActions(
			box.Get(listRoles),
		)

	items := v1.Resource("/items").
		WithActions(
			box.Get(listItems),
			box.Post(addItem),
			box.ActionPost(loadSampleData),
		)

	v1.Resource("/items/{position}").
		WithActions(
			box.Get(getItem),
			box.ActionPost(removeItem),
			box.ActionPost(updateItem),
			box.ActionPost(moveItem),
		)

	v1.Resource("/view").
		WithActions(
			box.Get(getView),
			box.ActionPost(sortByRole),
			box.ActionPost(toggleSort),
			box.ActionPost(setFilterText),
			box.ActionPost(clearFilters),
			box.ActionPost(setQuery),
		)

	v1.Resource("/view/rows").
		WithActions(
			box.Get(listRows),
		)

	v1.Resource("/view/rows/{row}").
		WithActions(
			box.Get(getRow),
			box.ActionPost(removeRow),
			box.ActionPost(moveRow),
		)

	v1.Resource("/events").
		WithActions(
			box.Get(streamEvents),
		)

	return items
}
