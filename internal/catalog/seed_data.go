package catalog

// DefaultSeed returns the built-in study dataset: first-semester real
// analysis notes grouped into five sections, plus a small quote collection.
func DefaultSeed() Seed {
	return Seed{
		Sections: []Section{
			{ID: 1, Name: "📐 Аксиомы", Description: "Аксиоматика вещественных чисел"},
			{ID: 2, Name: "📊 Супремум и инфимум", Description: "Верхние и нижние грани множеств"},
			{ID: 3, Name: "🎯 Предел последовательности", Description: "Теория пределов и сходимость"},
			{ID: 4, Name: "🔍 Доказательства", Description: "Важные математические доказательства"},
			{ID: 5, Name: "🛠️ Методы решения", Description: "Методы решения задач"},
		},
		Materials: []Material{
			{ID: 1, SectionID: 1, Title: "Аксиомы сложения", Content: "На множестве вещественных чисел R определена операция сложения, удовлетворяющая четырём аксиомам.\n\n" +
				"1. Коммутативность: a + b = b + a для любых a, b ∈ R.\n" +
				"2. Ассоциативность: (a + b) + c = a + (b + c).\n" +
				"3. Существование нуля: существует элемент 0 такой, что a + 0 = a для любого a.\n" +
				"4. Существование противоположного: для каждого a существует −a такое, что a + (−a) = 0.\n\n" +
				"Из этих аксиом выводятся привычные свойства: единственность нуля, единственность противоположного элемента, правило переноса слагаемых через знак равенства."},
			{ID: 2, SectionID: 1, Title: "Аксиомы умножения", Content: "Операция умножения на R \\ {0} образует коммутативную группу.\n\n" +
				"1. Коммутативность: a · b = b · a.\n" +
				"2. Ассоциативность: (a · b) · c = a · (b · c).\n" +
				"3. Существование единицы: a · 1 = a, причём 1 ≠ 0.\n" +
				"4. Существование обратного: для каждого a ≠ 0 существует a⁻¹ такое, что a · a⁻¹ = 1.\n\n" +
				"Связь сложения и умножения задаёт дистрибутивность: a · (b + c) = a · b + a · c. Вместе аксиомы сложения, умножения и дистрибутивности означают, что R — поле."},
			{ID: 3, SectionID: 1, Title: "Аксиомы порядка", Content: "На R задано отношение ≤, согласованное с операциями поля.\n\n" +
				"1. Рефлексивность: a ≤ a.\n" +
				"2. Антисимметричность: если a ≤ b и b ≤ a, то a = b.\n" +
				"3. Транзитивность: если a ≤ b и b ≤ c, то a ≤ c.\n" +
				"4. Линейность: для любых a, b верно a ≤ b или b ≤ a.\n" +
				"5. Согласованность со сложением: из a ≤ b следует a + c ≤ b + c.\n" +
				"6. Согласованность с умножением: из 0 ≤ a и 0 ≤ b следует 0 ≤ a · b.\n\n" +
				"Таким образом, R — линейно упорядоченное поле."},
			{ID: 4, SectionID: 1, Title: "Аксиома полноты", Content: "Аксиома полноты (непрерывности) отличает R от поля рациональных чисел Q.\n\n" +
				"Формулировка: пусть A и B — непустые подмножества R, причём для любых a ∈ A и b ∈ B выполнено a ≤ b. Тогда существует c ∈ R такое, что a ≤ c ≤ b для всех a ∈ A, b ∈ B.\n\n" +
				"Именно аксиома полноты гарантирует существование супремума у всякого непустого ограниченного сверху множества, сходимость монотонных ограниченных последовательностей и существование корня из двух. В Q аксиома полноты не выполняется: множества {x ∈ Q : x² < 2} и {x ∈ Q : x² > 2, x > 0} нельзя разделить рациональным числом."},
			{ID: 5, SectionID: 2, Title: "Ограниченные множества", Content: "Множество X ⊂ R называется ограниченным сверху, если существует M ∈ R такое, что x ≤ M для всех x ∈ X. Любое такое M называется верхней гранью множества X.\n\n" +
				"Аналогично, X ограничено снизу, если существует m такое, что m ≤ x для всех x ∈ X; такое m — нижняя грань.\n\n" +
				"Множество называется ограниченным, если оно ограничено и сверху, и снизу. Эквивалентно: существует C > 0 такое, что |x| ≤ C для всех x ∈ X.\n\n" +
				"Примеры: отрезок [0, 1] ограничен; множество натуральных чисел N ограничено снизу, но не сверху (принцип Архимеда); Z не ограничено ни с одной стороны."},
			{ID: 6, SectionID: 2, Title: "Определение супремума и инфимума", Content: "Супремум — точная верхняя грань. Число s = sup X, если:\n" +
				"1) x ≤ s для всех x ∈ X (s — верхняя грань);\n" +
				"2) для любого ε > 0 найдётся x ∈ X такой, что x > s − ε (меньшей верхней грани нет).\n\n" +
				"Инфимум — точная нижняя грань, определяется симметрично: i = inf X, если i ≤ x для всех x ∈ X и для любого ε > 0 найдётся x ∈ X с x < i + ε.\n\n" +
				"Супремум может принадлежать множеству (тогда это максимум), а может и не принадлежать: sup (0, 1) = 1, но 1 ∉ (0, 1)."},
			{ID: 7, SectionID: 2, Title: "Теорема о существовании супремума", Content: "Теорема. Всякое непустое ограниченное сверху множество X ⊂ R имеет супремум, и притом единственный.\n\n" +
				"Доказательство опирается на аксиому полноты. Пусть B — множество всех верхних граней X; оно непусто по условию ограниченности. Для любых x ∈ X и b ∈ B выполнено x ≤ b, значит по аксиоме полноты существует c, разделяющее X и B: x ≤ c ≤ b. Первое неравенство означает, что c — верхняя грань, второе — что c не превосходит ни одной верхней грани, то есть c = sup X.\n\n" +
				"Единственность следует из антисимметричности порядка: две точные верхние грани не превосходят друг друга."},
			{ID: 8, SectionID: 3, Title: "Определение предела", Content: "Число a называется пределом последовательности {xₙ}, если для любого ε > 0 существует номер N такой, что для всех n > N выполнено |xₙ − a| < ε.\n\n" +
				"Запись: lim xₙ = a при n → ∞, или xₙ → a.\n\n" +
				"Содержательно: какую бы окрестность точки a мы ни взяли, вне её лежит лишь конечное число членов последовательности.\n\n" +
				"Пример. Последовательность xₙ = 1/n сходится к нулю: для заданного ε > 0 достаточно взять N > 1/ε, тогда при n > N имеем |1/n − 0| = 1/n < 1/N < ε.\n\n" +
				"Последовательность, имеющая предел, называется сходящейся; не имеющая — расходящейся. Пример расходящейся последовательности: xₙ = (−1)ⁿ."},
			{ID: 9, SectionID: 3, Title: "Единственность предела", Content: "Теорема. Сходящаяся последовательность имеет ровно один предел.\n\n" +
				"Доказательство от противного. Пусть xₙ → a и xₙ → b, причём a ≠ b. Возьмём ε = |a − b| / 2 > 0. По определению предела найдётся N₁ такое, что |xₙ − a| < ε при n > N₁, и N₂ такое, что |xₙ − b| < ε при n > N₂. Тогда при n > max(N₁, N₂) по неравенству треугольника:\n\n" +
				"|a − b| ≤ |a − xₙ| + |xₙ − b| < ε + ε = |a − b|.\n\n" +
				"Получили |a − b| < |a − b| — противоречие. Значит, a = b."},
			{ID: 10, SectionID: 3, Title: "Предел монотонной последовательности", Content: "Теорема Вейерштрасса о монотонной последовательности. Всякая монотонно возрастающая и ограниченная сверху последовательность сходится, причём её предел равен супремуму множества её значений.\n\n" +
				"Доказательство. Пусть s = sup {xₙ} — супремум существует по теореме о точной верхней грани. Для любого ε > 0 число s − ε не является верхней гранью, поэтому найдётся номер N с xₙ > s − ε. В силу монотонности при всех n > N выполнено s − ε < x_N ≤ xₙ ≤ s, то есть |xₙ − s| < ε.\n\n" +
				"Симметрично: убывающая и ограниченная снизу последовательность сходится к инфимуму своих значений."},
			{ID: 11, SectionID: 3, Title: "Число e", Content: "Рассмотрим последовательность xₙ = (1 + 1/n)ⁿ.\n\n" +
				"По неравенству Бернулли и биномиальному разложению показывается, что {xₙ} монотонно возрастает и ограничена сверху числом 3. По теореме о монотонной последовательности она сходится; её предел обозначается e:\n\n" +
				"e = lim (1 + 1/n)ⁿ ≈ 2,718281828…\n\n" +
				"Число e иррационально и трансцендентно, служит основанием натурального логарифма и появляется во всех разделах анализа: производная eˣ равна самой функции, а ряд 1 + 1/1! + 1/2! + 1/3! + … сходится к e быстрее, чем исходная последовательность."},
			{ID: 12, SectionID: 4, Title: "Иррациональность корня из двух", Content: "Теорема. Не существует рационального числа, квадрат которого равен 2.\n\n" +
				"Доказательство от противного. Пусть √2 = p/q, где дробь p/q несократима. Тогда p² = 2q², значит p² чётно, а потому чётно и p: p = 2k. Подставляя, получаем 4k² = 2q², то есть q² = 2k², откуда q тоже чётно.\n\n" +
				"Итак, p и q оба делятся на 2 — противоречие с несократимостью дроби. Следовательно, √2 иррационально.\n\n" +
				"Это доказательство, известное ещё пифагорейцам, — классический образец рассуждения от противного и первый исторический пример несоизмеримых величин."},
			{ID: 13, SectionID: 4, Title: "Неравенство Бернулли", Content: "Теорема. Для любого вещественного x ≥ −1 и любого натурального n выполнено (1 + x)ⁿ ≥ 1 + nx.\n\n" +
				"Доказательство по индукции. База: при n = 1 обе части равны 1 + x.\n\n" +
				"Шаг: пусть (1 + x)ⁿ ≥ 1 + nx. Умножим обе части на 1 + x ≥ 0 (здесь используется условие x ≥ −1):\n\n" +
				"(1 + x)ⁿ⁺¹ ≥ (1 + nx)(1 + x) = 1 + (n + 1)x + nx² ≥ 1 + (n + 1)x,\n\n" +
				"поскольку nx² ≥ 0. Неравенство Бернулли — основной инструмент при оценке степенных выражений, в частности при доказательстве сходимости (1 + 1/n)ⁿ."},
			{ID: 14, SectionID: 4, Title: "Теорема Больцано — Вейерштрасса", Content: "Теорема. Из всякой ограниченной последовательности можно выделить сходящуюся подпоследовательность.\n\n" +
				"Доказательство методом деления отрезка пополам. Пусть все члены последовательности лежат в отрезке [a, b]. Разделим его пополам; хотя бы одна из половин содержит бесконечно много членов — выберем её и обозначим [a₁, b₁]. Продолжая деление, получаем систему вложенных отрезков, длины которых стремятся к нулю; по лемме о вложенных отрезках они имеют единственную общую точку c.\n\n" +
				"Выбирая в каждом отрезке по одному члену последовательности со всё бо́льшим номером, получаем подпоследовательность, сходящуюся к c."},
			{ID: 15, SectionID: 5, Title: "Метод математической индукции", Content: "Чтобы доказать утверждение P(n) для всех натуральных n, достаточно:\n\n" +
				"1. База индукции: проверить P(1).\n" +
				"2. Индукционный переход: доказать, что из P(n) следует P(n + 1).\n\n" +
				"Типичные применения: формулы сумм (1 + 2 + … + n = n(n+1)/2), делимость (например, 7 | 3²ⁿ⁺¹ + 2ⁿ⁺²), неравенства (Бернулли, 2ⁿ > n²  при n ≥ 5).\n\n" +
				"Практический совет: в индукционном переходе выписывайте отдельно, что дано (P(n)) и что требуется (P(n+1)), и ищите, как требуемое выражается через данное. Ошибка «доказательства», где база не проверена, — классическая ловушка."},
			{ID: 16, SectionID: 5, Title: "Доказательство от противного", Content: "Схема: чтобы доказать утверждение A, предполагаем его отрицание ¬A и выводим противоречие — с условием задачи, с ранее доказанным фактом или с самим ¬A.\n\n" +
				"Метод незаменим для доказательства отрицательных утверждений: несуществования, иррациональности, единственности. Примеры: иррациональность √2, единственность предела, бесконечность множества простых чисел (Евклид: если простых конечное число, то p₁·p₂·…·pₖ + 1 даёт противоречие).\n\n" +
				"Важно аккуратно строить отрицание: отрицание «для всех x верно P» — это «существует x, для которого P неверно», а не «для всех x неверно P»."},
			{ID: 17, SectionID: 5, Title: "Метод оценок при вычислении пределов", Content: "Теорема о двух милиционерах (о зажатой последовательности): если aₙ ≤ xₙ ≤ bₙ начиная с некоторого номера и lim aₙ = lim bₙ = c, то lim xₙ = c.\n\n" +
				"Практические приёмы оценки:\n" +
				"1. Вынесение старшего члена: (2n² + n)/(n² + 3) = (2 + 1/n)/(1 + 3/n²) → 2.\n" +
				"2. Зажатие осциллирующих множителей: |sin n / n| ≤ 1/n → 0.\n" +
				"3. Для корней — домножение на сопряжённое: √(n+1) − √n = 1/(√(n+1) + √n) → 0.\n" +
				"4. Сравнение роста: qⁿ ≪ n! ≪ nⁿ, логарифм растёт медленнее любой степени.\n\n" +
				"Главное правило: сначала угадать ответ по старшим членам, затем оформить строгую оценку сверху и снизу."},
		},
		Quotes: []Quote{
			{ID: 1, Author: "Карл Фридрих Гаусс", Text: "Математика — царица наук, а арифметика — царица математики."},
			{ID: 2, Author: "Леонард Эйлер", Text: "Математика — это искусство называть разные вещи одним и тем же именем."},
			{ID: 3, Author: "Николай Лобачевский", Text: "Нет ни одной области математики, как бы отвлечённа она ни была, которая когда-нибудь не окажется применимой к явлениям действительного мира."},
			{ID: 4, Author: "Давид Гильберт", Text: "Мы должны знать — мы будем знать."},
			{ID: 5, Author: "Анри Пуанкаре", Text: "Математика — это искусство давать одно и то же имя разным вещам; поэзия — искусство давать разные имена одной и той же вещи."},
			{ID: 6, Author: "Карл Вейерштрасс", Text: "Математик, который не является отчасти поэтом, никогда не будет совершенным математиком."},
			{ID: 7, Author: "Георг Кантор", Text: "Сущность математики — в её свободе."},
			{ID: 8, Author: "Софья Ковалевская", Text: "Нельзя быть математиком, не будучи в то же время поэтом в душе."},
			{ID: 9, Author: "Андрей Колмогоров", Text: "Математика — это то, посредством чего люди управляют природой и собой."},
			{ID: 10, Author: "Исаак Ньютон", Text: "В изучении наук примеры полезнее правил."},
		},
	}
}
