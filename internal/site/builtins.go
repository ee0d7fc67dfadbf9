package site

// Builtin page templates used when the templates directory does not provide
// an override. Kept deliberately plain; sites that care about markup ship
// their own <id>.tmpl files.
var builtinTemplates = map[string]string{
	TemplateIndex:  builtinIndexTemplate,
	TemplateRecipe: builtinRecipeTemplate,
}

const builtinIndexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Site.Title}}{{if gt .TotalPages 1}} - page {{.Page}}{{end}}</title>
</head>
<body>
<h1>{{.Site.Title}}</h1>
{{if .Site.Description}}<p class="description">{{.Site.Description}}</p>
{{end}}<ul class="recipes">
{{range .Recipes}}  <li>
    <a href="{{.Href}}">{{.Title}}</a>
    <span class="author">{{.Author}}</span>
    <p>{{.Description}}</p>
  </li>
{{end}}</ul>
<p class="pagination">Page {{.Page}} of {{.TotalPages}}</p>
</body>
</html>
`

const builtinRecipeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Recipe.Title}} - {{.Site.Title}}</title>
</head>
<body>
<h1>{{.Recipe.Title}}</h1>
<p class="byline">{{.Author.Name}} &middot; {{.Recipe.Type}}</p>
<div class="description">{{.Recipe.DescriptionHTML}}</div>
{{if .Recipe.PrepTime}}<p class="prep-time">Prep time: {{.Recipe.PrepTime}}</p>
{{end}}{{if .Recipe.CookTime}}<p class="cook-time">Cook time: {{.Recipe.CookTime}}</p>
{{end}}{{if .Recipe.Yield}}<p class="yield">Yield: {{.Recipe.Yield}}</p>
{{end}}{{if .Recipe.ServingSize}}<p class="serving-size">Serving size: {{.Recipe.ServingSize}}</p>
{{end}}<h2>Ingredients</h2>
<ul class="ingredients">
{{range .Recipe.Ingredients}}  <li>{{.}}</li>
{{end}}</ul>
<h2>Directions</h2>
<div class="directions">{{.Recipe.DirectionsHTML}}</div>
{{if .Recipe.Nutrition}}<h2>Nutrition</h2>
<table class="nutrition">
{{range $macro, $value := .Recipe.Nutrition}}  <tr><th>{{$macro}}</th><td>{{$value}}</td></tr>
{{end}}</table>
{{end}}</body>
</html>
`
